package track

// Default colors per track kind, matching the matplotlib named colors the
// figures have always used.
const (
	ColorStructure = "skyblue"
	ColorLigand    = "purple"
	ColorTED       = "mediumpurple"
	ColorFeature   = "royalblue"
)

// palette supplies distinguishable colors for tracks that give each entity
// its own hue, cycling when entries outnumber the palette.
var palette = []string{
	"#1f77b4", "#ff7f0e", "#2ca02c", "#d62728", "#9467bd",
	"#8c564b", "#e377c2", "#7f7f7f", "#bcbd22", "#17becf",
}

// PaletteColor returns the i-th palette color, wrapping around.
func PaletteColor(i int) string {
	return palette[i%len(palette)]
}
