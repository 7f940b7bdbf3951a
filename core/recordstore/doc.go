// Package recordstore persists plugin records in the record database.
//
// Every plugin of the load order is a row in `plugins`; its soul gem records,
// including overrides of other plugins' records, are rows in `soul_gems`. A
// generator run loads the plugins named by plugins.txt, then saves the output
// plugin back so the next run finds the variants it synthesized.
//
// # Import
//
// Records reach the database through Import, which reads a YAML document
// such as:
//
//	plugins:
//	  - name: Skyrim.esm
//	    soulGems:
//	      - formKey: 0x2E4E3:Skyrim.esm
//	        editorID: SoulGemPetty
//	        name: Petty Soul Gem
//	        value: 10
//	        maximumCapacity: Petty
//	        keywords: ["0x0ED2F1:Skyrim.esm"]
//
// Records without a formKey are assigned the next free local ID of their plugin.
package recordstore
