package main

import (
	"flag"
	"fmt"
	"image"
	"os"
	"path/filepath"

	"chosenoffset.com/pixelrealm/internal/sprite"
	"chosenoffset.com/pixelrealm/internal/world"
)

func main() {
	out := flag.String("out", "sprites", "output directory")
	scale := flag.Int("scale", 4, "pixels per table cell")
	columns := flag.Int("columns", 8, "atlas columns")
	flag.Parse()

	fmt.Println("Pixel Realm Sprite Sheet Generator")
	fmt.Println("==================================")
	fmt.Println()

	if err := generate(*out, *scale, *columns); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	fmt.Println()
	fmt.Println("Done!")
}

// generate writes every built-in sprite as its own PNG, one ground tile per
// biome, and an atlas of all of them
func generate(dir string, scale, columns int) error {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}

	f := sprite.NewFactory()
	var sheet []*image.RGBA
	for _, name := range f.Names() {
		img, err := f.Image(name, scale)
		if err != nil {
			return fmt.Errorf("failed to build %s: %w", name, err)
		}
		if err := save(img, filepath.Join(dir, name+".png")); err != nil {
			return err
		}
		sheet = append(sheet, img)
	}

	for _, b := range world.Biomes() {
		tile := sprite.PatternedTile(b.Ground, b.Accent, b.Pattern)
		if err := save(tile, filepath.Join(dir, "tile_"+string(b.Name)+".png")); err != nil {
			return err
		}
		sheet = append(sheet, tile)
	}

	return save(sprite.Atlas(sheet, columns), filepath.Join(dir, "atlas.png"))
}

func save(img image.Image, path string) error {
	if err := sprite.SavePNG(img, path); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	fmt.Printf("  wrote %s\n", path)
	return nil
}
