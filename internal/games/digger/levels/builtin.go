package levels

import "github.com/vovakirdan/tui-digger/internal/games/digger/engine"

// builtin is the default campaign. Every level is 28x16 and its escape
// ladder starts on row 0.
var builtin = []engine.LevelDef{
	{
		ID:   "tutorial",
		Name: "First Steps",
		Rows: []string{
			"...........................T",
			"...........................T",
			"...........................T",
			"...........................T",
			"...........................T",
			"...........................T",
			"...........................T",
			"...........................T",
			"...........................T",
			"...........................T",
			"...........................T",
			"...........................T",
			"...........................T",
			"...........................T",
			"P.G.G.G.G.G.G..............T",
			"BBBBBBBBBBBBBBBBBBBBBBBBBBBB",
		},
	},
	{
		ID:   "ladders",
		Name: "Ladder Yard",
		Rows: []string{
			"..........................T.",
			"..........................T.",
			"...G......................T.",
			"BBBBBBBHBBBB.......BBBBBBBBB",
			".......H...........H........",
			".......H....G......H........",
			".......H..BBBBBB...H........",
			".......H...........H....G...",
			".......H-----------H..BBBBBB",
			".......H...........H........",
			"....G..H.....E.....H........",
			"BBBBBBBBBBBBBBBBHBBBBBBBBBBB",
			"................H...........",
			"..P.....G.......H.....G....E",
			"BBBBBBBBBBBBBBBBBBBBBBBBBBBB",
			"SSSSSSSSSSSSSSSSSSSSSSSSSSSS",
		},
	},
	{
		ID:   "monkey-bars",
		Name: "Monkey Bars",
		Rows: []string{
			"T...........................",
			"T...........................",
			"T.....G.........E.......G...",
			"BBBHBBBBBBBSSSSBBBBBBBBHBBBB",
			"...H...................H....",
			"...H----------.........H....",
			"...H.........H....G....H....",
			"...H.........H..BBBBBBBBBB..",
			"...H...G.....H..........H...",
			"SSSSSSSSBBBBBSBBBB......H...",
			".............H...-------H...",
			"..E..........H..........H...",
			"BBBBBBBBHBBBBBBBBBBBHBBBBBBB",
			"........H...........H.......",
			"P.......H.....G.....H.....G.",
			"SSSSSSSSSSSSSSSSSSSSSSSSSSSS",
		},
	},
	{
		ID:   "twin-towers",
		Name: "Twin Towers",
		Rows: []string{
			".............TT.............",
			".............TT.............",
			"..G.......E..TT..E.......G..",
			"BBBBBBHBBBBBBSSBBBBBBHBBBBBB",
			"......H..............H......",
			"......H...G......G...H......",
			"......H..BBBB..BBBB..H......",
			"......H--------------H......",
			"......H..............H......",
			"..G...H..............H...G..",
			"BBBBBBBBBBHBBBBBBHBBBBBBBBBB",
			"..........H......H..........",
			"..........H..G...H..........",
			"....E.....H.BBBB.H.....E....",
			"..........H..P...H..........",
			"SSSSSSSSSSSSSSSSSSSSSSSSSSSS",
		},
	},
	{
		ID:   "vault",
		Name: "The Vault",
		Rows: []string{
			"...........................T",
			"...........................T",
			".G....E.........G.....E....T",
			"BBBBBBBBHBBBBBBBBBBBHBBBBBBB",
			"........H...........H.......",
			"..G.....H-----------H.....G.",
			"BBBBB...H...........H...BBBB",
			"........H...BBBBB...H.......",
			"........H...BGGGB...H.......",
			"........H...BBBBB...H.......",
			"...E....H...........H....E..",
			"BBBBBBBBBBBBBHHBBBBBBBBBBBBB",
			".............HH.............",
			"..G..........HH..........G..",
			"P............HH.............",
			"SSSSSSSSSSSSSSSSSSSSSSSSSSSS",
		},
	},
}

// Builtin returns a copy of the built-in campaign.
func Builtin() []engine.LevelDef {
	defs := make([]engine.LevelDef, len(builtin))
	for i, d := range builtin {
		d.Rows = append([]string(nil), d.Rows...)
		defs[i] = d
	}
	return defs
}
