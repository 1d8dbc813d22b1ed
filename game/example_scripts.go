package game

import "time"

// exampleAimedScript drops a short column of linear shots above the player
const exampleAimedScript = `
function spawn(ctx) {
	var x = Math.max(ctx.margin, Math.min(ctx.width - ctx.margin, ctx.playerX));
	var out = [];
	for (var i = 0; i < 3; i++) {
		out.push({kind: "linear", x: x, y: ctx.spawnY - i * 20});
	}
	return out;
}
`

// exampleCrossfireScript opens two wide rings near the side edges, alternating sides
const exampleCrossfireScript = `
var side = 0;

function spawn(ctx) {
	side = 1 - side;
	var x = side ? ctx.width * 0.25 : ctx.width * 0.75;
	var out = [];
	for (var i = 0; i < 6; i++) {
		out.push({
			kind: "circle",
			x: x,
			y: ctx.spawnY,
			orbit: 60,
			angle: i / 6 * Math.PI * 2,
			angularSpeed: side ? 0.02 : -0.02
		});
	}
	return out;
}
`

// ExampleScripts returns scripted patterns bundled for demos and smoke tests
func ExampleScripts() []ScriptConfig {
	return []ScriptConfig{
		{
			Name:           "aimed",
			Source:         exampleAimedScript,
			MinLevel:       2,
			BaseInterval:   3 * time.Second,
			IntervalSpread: 2 * time.Second,
		},
		{
			Name:           "crossfire",
			Source:         exampleCrossfireScript,
			MinLevel:       4,
			BaseInterval:   5 * time.Second,
			IntervalSpread: 3 * time.Second,
		},
	}
}
