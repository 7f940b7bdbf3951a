// Package plugin models the record store that soul gem generation reads from and writes to.
//
// A plugin (mod) is an ordered collection of records identified by FormKeys. Plugins are
// stacked in a load order; when several plugins carry a record with the same FormKey,
// the one loaded last wins.
//
// # Records
//
// Only soul gem records are modelled. A SoulGem carries a contained soul level, a
// maximum capacity level, a base value and the flags and keywords that classify it:
//   - CanHoldNpcSoul (major flag): the gem may hold a black (NPC) soul.
//   - ReusableSoulGem (keyword): filled variants link back to the empty gem.
//
// # Output Plugin
//
// The generator writes into a Mod through two primitives:
//   - AddNew: creates a record with a freshly allocated local ID.
//   - GetOrAddAsOverride: copies a foreign record into the mod, keeping its FormKey.
//
// # Load Order
//
//	lo := plugin.NewLoadOrder(master, patch)
//	for _, gem := range lo.WinningOverrides() {
//	    fmt.Println(gem.FormKey, gem.Value)
//	}
package plugin
