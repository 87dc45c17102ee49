// Package assets embeds the bundled levels and turns them into simulation
// input.
package assets

import (
	"embed"
	"fmt"
	"io/fs"
	"log"
	"path"

	"github.com/bitwiserain/springshot/shared/leveldata"
	"github.com/bitwiserain/springshot/shared/physics"
)

const levelsDir = "levels"

var (
	//go:embed all:levels
	assetFS embed.FS
)

// LevelFS returns the embedded file system holding levels/*.tmx.
func LevelFS() fs.FS {
	return assetFS
}

// LevelNames lists the bundled levels, sorted.
func LevelNames() ([]string, error) {
	_, names, err := leveldata.LoadAllLevels(assetFS, levelsDir)
	return names, err
}

// LoadLevel loads a bundled level by name ("level1" for levels/level1.tmx).
func LoadLevel(name string) (physics.Level, error) {
	return LoadLevelFrom(assetFS, path.Join(levelsDir, name+".tmx"))
}

// LoadLevelFrom loads any TMX file from fsys and checks it fits the
// simulation's tile grid.
func LoadLevelFrom(fsys fs.FS, tmxPath string) (physics.Level, error) {
	data, err := leveldata.LoadCollisionData(fsys, tmxPath)
	if err != nil {
		return physics.Level{}, err
	}
	lvl, err := physics.LevelFromData(data)
	if err != nil {
		return physics.Level{}, fmt.Errorf("level %s: %w", tmxPath, err)
	}
	log.Printf("Loaded level: %s (%dx%d tiles, %d collision rects)", tmxPath, lvl.Cols, lvl.Rows, len(lvl.Solids))
	return lvl, nil
}

// MustLoadLevel is LoadLevel for bootstrap code that cannot continue without it.
func MustLoadLevel(name string) physics.Level {
	lvl, err := LoadLevel(name)
	if err != nil {
		panic(fmt.Sprintf("Failed to load level %s: %v", name, err))
	}
	return lvl
}
