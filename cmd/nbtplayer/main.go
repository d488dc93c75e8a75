// Command nbtplayer is the "player file" collaborator of spec §6: it
// decodes a player.dat-shaped document through the Binding Decoder
// rather than walking raw parser events, and prints the populated
// record. Its own settings (whether to list the inventory) may optionally
// come from a TOML config file, read with BurntSushi/toml.
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/BurntSushi/toml"
	"github.com/peterbourgon/ff/v3"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"

	"github.com/landru27/gonbt"
	"github.com/landru27/gonbt/internal/playerdata"
)

// settings holds the optional, TOML-sourced display configuration.
type settings struct {
	ShowInventory bool `toml:"show_inventory"`
}

func loadSettings(path string) (settings, error) {
	var s settings
	if path == "" {
		return s, nil
	}
	if _, err := toml.DecodeFile(path, &s); err != nil {
		return s, errors.Wrap(err, "decoding config")
	}
	return s, nil
}

func main() {
	log := logrus.New()

	fs := flag.NewFlagSet("nbtplayer", flag.ExitOnError)
	var (
		path       = fs.String("file", "", "path to a player.dat file")
		configPath = fs.String("config", "", "optional TOML settings file")
	)
	if err := ff.Parse(fs, os.Args[1:], ff.WithEnvVarPrefix("NBTPLAYER")); err != nil {
		log.WithError(err).Fatal("parsing flags")
	}
	if *path == "" {
		log.Fatal("-file is required")
	}

	cfg, err := loadSettings(*configPath)
	if err != nil {
		log.WithError(err).Fatal("loading settings")
	}

	player, err := decodePlayer(*path)
	if err != nil {
		log.WithError(err).Fatal("decoding player file")
	}

	fmt.Printf("UUID:       %s\n", player.UUID)
	fmt.Printf("Health:     %v\n", player.Health)
	fmt.Printf("Food level: %d\n", player.FoodLevel)
	fmt.Printf("XP level:   %d\n", player.XpLevel)
	fmt.Printf("Dimension:  %s\n", player.Dimension)
	fmt.Printf("Position:   %v\n", player.Pos)
	if cfg.ShowInventory {
		fmt.Printf("Inventory (%d stacks):\n", len(player.Inventory))
		for _, stack := range player.Inventory {
			fmt.Printf("  slot %d: %s x%d\n", stack.Slot, stack.ID, stack.Count)
		}
	}
}

func decodePlayer(path string) (*playerdata.Player, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrap(err, "opening file")
	}
	defer f.Close()

	src, err := nbt.OpenCompressed(f)
	if err != nil {
		return nil, errors.Wrap(err, "sniffing compression")
	}

	player, err := nbt.DecodeFromSource[playerdata.Player](src)
	if err != nil {
		return nil, errors.Wrap(err, "decoding document")
	}
	return &player, nil
}
