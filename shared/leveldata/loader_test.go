package leveldata

import (
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testLevel = `<?xml version="1.0" encoding="UTF-8"?>
<map version="1.10" tiledversion="1.10.2" orientation="orthogonal" renderorder="right-down" width="10" height="5" tilewidth="32" tileheight="32" infinite="0" nextlayerid="3" nextobjectid="5">
 <objectgroup id="1" name="collision">
  <object id="1" x="0" y="128" width="320" height="32"/>
  <object id="2" x="96" y="64" width="32" height="32"/>
 </objectgroup>
 <objectgroup id="2" name="PlayerSpawn">
  <object id="3" x="192" y="96" width="32" height="32">
   <properties>
    <property name="spawnIndex" type="int" value="1"/>
   </properties>
  </object>
  <object id="4" x="64" y="96" width="32" height="32"/>
 </objectgroup>
</map>
`

const noCollisionLevel = `<?xml version="1.0" encoding="UTF-8"?>
<map version="1.10" orientation="orthogonal" renderorder="right-down" width="4" height="4" tilewidth="32" tileheight="32" infinite="0">
 <objectgroup id="1" name="decor">
  <object id="1" x="0" y="0" width="32" height="32"/>
 </objectgroup>
</map>
`

func TestLoadCollisionData(t *testing.T) {
	fsys := fstest.MapFS{"levels/test.tmx": {Data: []byte(testLevel)}}

	data, err := LoadCollisionData(fsys, "levels/test.tmx")
	require.NoError(t, err)

	assert.Equal(t, 10, data.Cols)
	assert.Equal(t, 5, data.Rows)
	assert.Equal(t, 32, data.TileWidth)
	assert.Equal(t, 320, data.MapWidth)
	assert.Equal(t, 160, data.MapHeight)

	require.Len(t, data.SolidRects, 2)
	assert.Equal(t, SolidRect{X: 0, Y: 0, W: 320, H: 32}, data.SolidRects[0])
	assert.Equal(t, SolidRect{X: 96, Y: 64, W: 32, H: 32}, data.SolidRects[1])

	require.Len(t, data.SpawnPoints, 2)
	assert.Equal(t, SpawnPoint{X: 64, Y: 32, Index: 0}, data.SpawnPoints[0])
	assert.Equal(t, SpawnPoint{X: 192, Y: 32, Index: 1}, data.SpawnPoints[1])

	sp, ok := data.Spawn()
	require.True(t, ok)
	assert.Equal(t, 64.0, sp.X)
}

func TestLoadCollisionDataMissingLayer(t *testing.T) {
	fsys := fstest.MapFS{"bad.tmx": {Data: []byte(noCollisionLevel)}}

	_, err := LoadCollisionData(fsys, "bad.tmx")
	require.ErrorIs(t, err, ErrNoCollisionLayer)
}

func TestLoadCollisionDataMissingFile(t *testing.T) {
	_, err := LoadCollisionData(fstest.MapFS{}, "nope.tmx")
	require.Error(t, err)
}

func TestLoadAllLevels(t *testing.T) {
	fsys := fstest.MapFS{
		"levels/b.tmx":      {Data: []byte(testLevel)},
		"levels/a.tmx":      {Data: []byte(testLevel)},
		"levels/readme.txt": {Data: []byte("not a level")},
	}

	levels, names, err := LoadAllLevels(fsys, "levels")
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "b"}, names)
	assert.Len(t, levels, 2)

	_, _, err = LoadAllLevels(fsys, "empty")
	require.Error(t, err)
}

func TestSpawnNone(t *testing.T) {
	_, ok := (&CollisionData{}).Spawn()
	assert.False(t, ok)
}
