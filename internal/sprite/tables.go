package sprite

import "image/color"

// Shared colours
var (
	black  = color.RGBA{20, 18, 22, 255}
	white  = color.RGBA{240, 240, 235, 255}
	skin   = color.RGBA{230, 190, 150, 255}
	red    = color.RGBA{200, 40, 40, 255}
	orange = color.RGBA{255, 140, 0, 255}
	yellow = color.RGBA{255, 215, 0, 255}
	brown  = color.RGBA{120, 80, 45, 255}
	grey   = color.RGBA{130, 125, 115, 255}
	dgrey  = color.RGBA{80, 76, 70, 255}
	green  = color.RGBA{60, 160, 60, 255}
	dgreen = color.RGBA{30, 100, 40, 255}
	blue   = color.RGBA{60, 100, 210, 255}
	cyan   = color.RGBA{150, 220, 255, 255}
	purple = color.RGBA{120, 60, 160, 255}
	sand   = color.RGBA{210, 180, 110, 255}
)

// builtin holds the shipped sprite tables, keyed by the names entities and
// world objects use.
var builtin = map[string]Table{
	"player": {
		Rows: []string{
			"..hhhh..",
			"..hssh..",
			"..ssss..",
			".bbbbbb.",
			"s.bbbb.s",
			"..bbbb..",
			"..l..l..",
			".kk..kk.",
		},
		Palette: map[rune]color.RGBA{'h': brown, 's': skin, 'b': blue, 'l': dgrey, 'k': black},
	},
	"npc": {
		Rows: []string{
			"..pppp..",
			".pssssp.",
			"..sees..",
			".pppppp.",
			"p.pppp.p",
			"..pppp..",
			"..pppp..",
			".kk..kk.",
		},
		Palette: map[rune]color.RGBA{'p': purple, 's': skin, 'e': black, 'k': black},
	},
	"slime": {
		Rows: []string{
			"........",
			"........",
			"...gg...",
			"..gggg..",
			".gwgwgg.",
			".gkgkgg.",
			"gggggggg",
			".dddddd.",
		},
		Palette: map[rune]color.RGBA{'g': green, 'd': dgreen, 'w': white, 'k': black},
	},
	"wolf": {
		Rows: []string{
			"........",
			"g.....gg",
			"gg...gwg",
			".ggggggk",
			".gggggg.",
			".gdddgg.",
			".g.g.g.g",
			".k.k.k.k",
		},
		Palette: map[rune]color.RGBA{'g': grey, 'd': dgrey, 'w': yellow, 'k': black},
	},
	"scorpion": {
		Rows: []string{
			"....ss..",
			"......s.",
			"......s.",
			"c..sss..",
			".cssss.c",
			"..ssss.c",
			".s.s.sc.",
			"s.s.s...",
		},
		Palette: map[rune]color.RGBA{'s': sand, 'c': brown},
	},
	"yeti": {
		Rows: []string{
			"..wwww..",
			".wbwwbw.",
			".wwkkww.",
			"wwwwwwww",
			"w.wwww.w",
			"w.wwww.w",
			"..w..w..",
			".ww..ww.",
		},
		Palette: map[rune]color.RGBA{'w': white, 'b': blue, 'k': dgrey},
	},
	"wisp": {
		Rows: []string{
			"...cc...",
			"..cwwc..",
			".cwwwwc.",
			".cwkwkc.",
			".cwwwwc.",
			"..cccc..",
			"...c.c..",
			"..c...c.",
		},
		Palette: map[rune]color.RGBA{'c': cyan, 'w': white, 'k': blue},
	},
	"bog_lurker": {
		Rows: []string{
			"........",
			"..dddd..",
			".dyddyd.",
			"dddddddd",
			"dgdddddg",
			"dggddggd",
			".dd..dd.",
			"dd....dd",
		},
		Palette: map[rune]color.RGBA{'d': dgreen, 'g': brown, 'y': yellow},
	},
	"fire_imp": {
		Rows: []string{
			".o....o.",
			".rr..rr.",
			"..rrrr..",
			".ryrryr.",
			"..rrrr..",
			".orrrro.",
			"..r..r..",
			".kk..kk.",
		},
		Palette: map[rune]color.RGBA{'r': red, 'o': orange, 'y': yellow, 'k': black},
	},
	"golem": {
		Rows: []string{
			"..gggg..",
			".googgg.",
			"gggggggg",
			"gogggggo",
			"gggrrggg",
			"g.gggg.g",
			"..gg.gg.",
			".ggg.ggg",
		},
		Palette: map[rune]color.RGBA{'g': dgrey, 'o': orange, 'r': red},
	},
	"tree": {
		Rows: []string{
			"...gg...",
			"..gggg..",
			".gggdgg.",
			"ggdggggg",
			".gggggd.",
			"..gggg..",
			"...bb...",
			"...bb...",
		},
		Palette: map[rune]color.RGBA{'g': green, 'd': dgreen, 'b': brown},
	},
	"rock": {
		Rows: []string{
			"........",
			"........",
			"...gg...",
			"..gggd..",
			".gglggd.",
			".ggggdd.",
			"gggggddd",
			".dddddd.",
		},
		Palette: map[rune]color.RGBA{'g': grey, 'd': dgrey, 'l': white},
	},
	"cactus": {
		Rows: []string{
			"...gg...",
			"...gg...",
			"g..gg...",
			"g..gg..g",
			"gggggggg",
			"...gg...",
			"...gg...",
			"..ssss..",
		},
		Palette: map[rune]color.RGBA{'g': dgreen, 's': sand},
	},
	"wall": {
		Rows: []string{
			"gggdgggd",
			"gggdgggd",
			"dddddddd",
			"dgggdggg",
			"dgggdggg",
			"dddddddd",
			"gggdgggd",
			"gggdgggd",
		},
		Palette: map[rune]color.RGBA{'g': grey, 'd': dgrey},
	},
	"shrine": {
		Rows: []string{
			"...yy...",
			"..yccy..",
			"...cc...",
			"..gccg..",
			"..gggg..",
			"..gggg..",
			".gggggg.",
			"gggggggg",
		},
		Palette: map[rune]color.RGBA{'y': yellow, 'c': cyan, 'g': grey},
	},
	"door": {
		Rows: []string{
			"..gggg..",
			".gbbbbg.",
			"gbbbbbbg",
			"gbbbbbbg",
			"gbbbbybg",
			"gbbbbbbg",
			"gbbbbbbg",
			"gggggggg",
		},
		Palette: map[rune]color.RGBA{'g': grey, 'b': brown, 'y': yellow},
	},
}

// Biome recolours of the base shapes
func init() {
	builtin["ice_rock"] = builtin["rock"].WithPalette(map[rune]color.RGBA{
		'g': cyan, 'd': blue,
	})
	builtin["lava_rock"] = builtin["rock"].WithPalette(map[rune]color.RGBA{
		'g': dgrey, 'd': black, 'l': orange,
	})
	builtin["dead_tree"] = builtin["tree"].WithPalette(map[rune]color.RGBA{
		'g': brown, 'd': dgrey,
	})
	builtin["snow_tree"] = builtin["tree"].WithPalette(map[rune]color.RGBA{
		'd': white,
	})
}
