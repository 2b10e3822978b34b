package sprite

import (
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"os"
)

// TileSize is the edge length of a ground tile in pixels
const TileSize = 32

// SolidTile creates a single-colour tile
func SolidTile(col color.RGBA) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, TileSize, TileSize))
	draw.Draw(img, img.Bounds(), &image.Uniform{col}, image.Point{}, draw.Src)
	return img
}

// Pattern names accepted by PatternedTile
const (
	PatternSpeckle = "speckle"
	PatternWaves   = "waves"
	PatternCracks  = "cracks"
	PatternGrid    = "grid"
)

// PatternedTile creates a ground tile with a simple overlay pattern
func PatternedTile(base, accent color.RGBA, pattern string) *image.RGBA {
	img := SolidTile(base)

	switch pattern {
	case PatternSpeckle:
		// Grass blades, sand grains and snow flecks
		pts := []image.Point{{5, 6}, {20, 3}, {12, 15}, {27, 18}, {7, 25}, {22, 28}}
		for _, p := range pts {
			img.SetRGBA(p.X, p.Y, accent)
			img.SetRGBA(p.X+1, p.Y, accent)
		}
	case PatternWaves:
		for y := 4; y < TileSize; y += 10 {
			for x := 0; x < TileSize; x++ {
				if (x/4)%2 == 0 {
					img.SetRGBA(x, y, accent)
				} else {
					img.SetRGBA(x, y+1, accent)
				}
			}
		}
	case PatternCracks:
		for i := 0; i < TileSize; i++ {
			img.SetRGBA(i, (i*7/10+4)%TileSize, accent)
			if i > TileSize/2 {
				img.SetRGBA(i, TileSize-i/2, accent)
			}
		}
	case PatternGrid:
		for i := 0; i < TileSize; i += 8 {
			for x := 0; x < TileSize; x++ {
				img.SetRGBA(x, i, accent)
				img.SetRGBA(i, x, accent)
			}
		}
	}

	return img
}

// Circle creates a round sprite of the given diameter, used for projectiles
// and particles.
func Circle(diameter int, fill, outline color.RGBA) *image.RGBA {
	if diameter < 2 {
		diameter = 2
	}
	img := image.NewRGBA(image.Rect(0, 0, diameter, diameter))

	center := diameter / 2
	radius := diameter/2 - 1

	for y := 0; y < diameter; y++ {
		for x := 0; x < diameter; x++ {
			dx := x - center
			dy := y - center
			distSq := dx*dx + dy*dy

			if distSq <= radius*radius {
				img.SetRGBA(x, y, fill)
			} else if distSq <= (radius+1)*(radius+1) {
				img.SetRGBA(x, y, outline)
			}
		}
	}

	return img
}

// Atlas packs equally sized images into a sheet, left to right and top to
// bottom. Cell size is taken from the largest image.
func Atlas(imgs []*image.RGBA, columns int) *image.RGBA {
	if columns < 1 {
		columns = 1
	}
	cell := 1
	for _, img := range imgs {
		if img == nil {
			continue
		}
		b := img.Bounds()
		cell = max(cell, b.Dx(), b.Dy())
	}
	rows := (len(imgs) + columns - 1) / columns

	atlas := image.NewRGBA(image.Rect(0, 0, columns*cell, max(rows, 1)*cell))
	for i, img := range imgs {
		if img == nil {
			continue
		}
		x := (i % columns) * cell
		y := (i / columns) * cell
		dst := image.Rect(x, y, x+cell, y+cell)
		draw.Draw(atlas, dst, img, img.Bounds().Min, draw.Src)
	}
	return atlas
}

// SavePNG writes an image to a PNG file
func SavePNG(img image.Image, path string) error {
	file, err := os.Create(path)
	if err != nil {
		return err
	}
	defer file.Close()

	return png.Encode(file, img)
}

// Darken returns a darker version of a color
func Darken(c color.RGBA, factor float64) color.RGBA {
	return color.RGBA{
		R: uint8(float64(c.R) * factor),
		G: uint8(float64(c.G) * factor),
		B: uint8(float64(c.B) * factor),
		A: c.A,
	}
}

// Lighten returns a lighter version of a color
func Lighten(c color.RGBA, factor float64) color.RGBA {
	return color.RGBA{
		R: uint8(float64(c.R) + (255-float64(c.R))*factor),
		G: uint8(float64(c.G) + (255-float64(c.G))*factor),
		B: uint8(float64(c.B) + (255-float64(c.B))*factor),
		A: c.A,
	}
}
