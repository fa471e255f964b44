// Package assets embeds the default eye model: a unit sphere looking down +Z with a dark
// pupil, a blue iris and a white sclera baked into its vertex colors.
package assets

import "embed"

// EyeModel is the name of the default eye model inside FS.
const EyeModel = "eye.gltf"

//go:embed eye.gltf
var FS embed.FS
