package recordstore

import (
	"context"
	"strings"
	"testing"

	"yastm-generator/core/database"
	"yastm-generator/core/plugin"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
)

func setupStore(t *testing.T) *Store {
	t.Helper()
	db, err := database.Connect(database.Config{Driver: database.DriverSQLite, Name: ":memory:"})
	require.NoError(t, err)

	store := New(db)
	require.NoError(t, store.Migrate(context.Background()))
	return store
}

func setupMockDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("Failed to open mock sql db: %v", err)
	}

	dialector := mysql.New(mysql.Config{
		Conn:                      db,
		SkipInitializeWithVersion: true,
	})

	gormDB, err := gorm.Open(dialector, &gorm.Config{})
	if err != nil {
		t.Fatalf("Failed to open gorm db: %v", err)
	}

	return gormDB, mock
}

func TestStore_SaveAndLoad(t *testing.T) {
	ctx := context.Background()
	store := setupStore(t)

	master := plugin.NewMod("Master.esm")
	name := "Soul Gem"
	empty := master.AddNew("gemEmpty")
	empty.Name = &name
	empty.Value = 200
	empty.Weight = 0.5
	empty.MaximumCapacity = plugin.LevelGrand
	empty.MajorFlags = plugin.MajorFlagCanHoldNpcSoul
	empty.Keywords = []plugin.FormKey{plugin.KeywordReusableSoulGem, plugin.NewFormKey("Master.esm", 0x900)}

	patch := plugin.NewMod("Patch.esp")
	filled := patch.AddNew("gemFilled")
	filled.ContainedSoul = plugin.LevelGrand
	filled.SetLinkedTo(empty.FormKey)
	override := patch.GetOrAddAsOverride(empty)
	override.Value = 250

	require.NoError(t, store.SaveMod(ctx, master))
	require.NoError(t, store.SaveMod(ctx, patch))

	mods, err := store.LoadMods(ctx, []plugin.ModKey{"Master.esm", "Patch.esp", "Unknown.esp"})
	require.NoError(t, err)
	require.Len(t, mods, 3)

	loaded := mods[0].SoulGems()
	require.Len(t, loaded, 1)
	assert.Equal(t, empty, loaded[0])

	loadedPatch := mods[1].SoulGems()
	require.Len(t, loadedPatch, 2)
	assert.Equal(t, filled, loadedPatch[0])
	assert.Equal(t, override, loadedPatch[1])
	assert.Equal(t, uint32(250), loadedPatch[1].Value)

	// Loaded mods keep allocating after their stored records.
	next := mods[1].AddNew("another")
	assert.Equal(t, uint32(0x801), next.FormKey.ID)

	assert.Equal(t, 0, mods[2].Len())
	assert.Equal(t, plugin.ModKey("Unknown.esp"), mods[2].ModKey())
}

func TestStore_SaveModReplacesRecords(t *testing.T) {
	ctx := context.Background()
	store := setupStore(t)

	mod := plugin.NewMod("Patch.esp")
	mod.AddNew("first")
	mod.AddNew("second")
	require.NoError(t, store.SaveMod(ctx, mod))

	smaller := plugin.NewMod("Patch.esp")
	smaller.AddNew("only")
	require.NoError(t, store.SaveMod(ctx, smaller))

	mods, err := store.LoadMods(ctx, []plugin.ModKey{"Patch.esp"})
	require.NoError(t, err)
	require.Equal(t, 1, mods[0].Len())
	assert.Equal(t, "only", mods[0].SoulGems()[0].EditorID)

	var count int64
	require.NoError(t, store.db.Model(&PluginRow{}).Count(&count).Error)
	assert.Equal(t, int64(1), count)
}

func TestStore_Check(t *testing.T) {
	t.Run("Migrated", func(t *testing.T) {
		store := setupStore(t)
		assert.NoError(t, store.Check(context.Background()))
	})

	t.Run("MissingColumns", func(t *testing.T) {
		db, mock := setupMockDB(t)
		rows := sqlmock.NewRows([]string{"Field", "Type", "Null", "Key", "Default", "Extra"}).
			AddRow("id", "bigint unsigned", "NO", "PRI", nil, "auto_increment").
			AddRow("plugin", "varchar(255)", "YES", "MUL", nil, "")
		mock.ExpectQuery("SHOW COLUMNS FROM `soul_gems`").WillReturnRows(rows)

		err := New(db).Check(context.Background())
		assert.ErrorIs(t, err, ErrSchemaMismatch)
		assert.ErrorContains(t, err, "form_mod")
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestStore_SaveModRollsBack(t *testing.T) {
	db, mock := setupMockDB(t)

	mock.ExpectBegin()
	mock.ExpectExec("INSERT INTO `plugins`").WillReturnError(assert.AnError)
	mock.ExpectRollback()

	mod := plugin.NewMod("Patch.esp")
	mod.AddNew("gem")

	err := New(db).SaveMod(context.Background(), mod)
	assert.ErrorIs(t, err, assert.AnError)
	assert.ErrorContains(t, err, "Patch.esp")
	assert.NoError(t, mock.ExpectationsWereMet())
}

const importDoc = `
plugins:
  - name: Skyrim.esm
    soulGems:
      - formKey: "0x2E4E3:Skyrim.esm"
        editorID: SoulGemPetty
        name: Petty Soul Gem
        value: 10
        weight: 0.1
        maximumCapacity: Petty
        keywords:
          - "0x0ED2F1:Skyrim.esm"
      - editorID: SoulGemBlack
        name: Black Soul Gem
        value: 300
        maximumCapacity: Grand
        canHoldNpcSoul: true
  - name: Extra.esp
    soulGems:
      - editorID: extraGem
        name: Extra Gem
        containedSoul: Petty
        maximumCapacity: Lesser
        linkedTo: "0x2E4E3:Skyrim.esm"
`

func TestStore_Import(t *testing.T) {
	ctx := context.Background()
	store := setupStore(t)

	res, err := store.Import(ctx, strings.NewReader(importDoc))
	require.NoError(t, err)
	assert.Equal(t, &ImportResult{Plugins: 2, SoulGems: 3}, res)

	mods, err := store.LoadMods(ctx, []plugin.ModKey{"Skyrim.esm", "Extra.esp"})
	require.NoError(t, err)

	skyrim := mods[0].SoulGems()
	require.Len(t, skyrim, 2)
	assert.Equal(t, plugin.NewFormKey("Skyrim.esm", 0x2E4E3), skyrim[0].FormKey)
	assert.True(t, skyrim[0].IsReusable())
	assert.Equal(t, plugin.LevelPetty, skyrim[0].MaximumCapacity)
	assert.Equal(t, plugin.NewFormKey("Skyrim.esm", 0x2E4E4), skyrim[1].FormKey)
	assert.True(t, skyrim[1].CanHoldNpcSoul())

	extra := mods[1].SoulGems()
	require.Len(t, extra, 1)
	assert.Equal(t, plugin.NewFormKey("Extra.esp", plugin.FirstLocalID), extra[0].FormKey)
	assert.Equal(t, plugin.LevelPetty, extra[0].ContainedSoul)
	assert.True(t, extra[0].LinksTo(skyrim[0].FormKey))
}

func TestStore_ImportRejectsBadDocuments(t *testing.T) {
	ctx := context.Background()
	store := setupStore(t)

	tests := []struct {
		name string
		doc  string
	}{
		{"UnknownField", "plugins:\n  - name: A.esp\n    colour: red\n"},
		{"MissingName", "plugins:\n  - soulGems: []\n"},
		{"BadLevel", "plugins:\n  - name: A.esp\n    soulGems:\n      - maximumCapacity: Huge\n"},
		{"BadFormKey", "plugins:\n  - name: A.esp\n    soulGems:\n      - formKey: nope\n"},
		{"DuplicateFormKey", "plugins:\n  - name: A.esp\n    soulGems:\n      - formKey: \"0x801:A.esp\"\n      - formKey: \"0x801:A.esp\"\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := store.Import(ctx, strings.NewReader(tt.doc))
			assert.Error(t, err)
		})
	}
}

func TestStore_ImportRejectsDuplicateFormKey(t *testing.T) {
	ctx := context.Background()
	store := setupStore(t)

	// The first entry is allocated 0x800, which the second one claims explicitly.
	doc := `plugins:
  - name: Master.esm
    soulGems:
      - editorID: first
        name: Grand Soul Gem
        value: 200
        maximumCapacity: Grand
      - formKey: "0x800:Master.esm"
        editorID: second
        value: 999
        maximumCapacity: Petty
`
	_, err := store.Import(ctx, strings.NewReader(doc))
	assert.ErrorContains(t, err, "plugins[0].soulGems[1]: duplicate form key")

	mods, err := store.LoadMods(ctx, []plugin.ModKey{"Master.esm"})
	require.NoError(t, err)
	assert.Zero(t, mods[0].Len())
}
