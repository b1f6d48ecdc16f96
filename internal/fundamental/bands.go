package fundamental

// band pairs a threshold with the label earned by clearing it. Bands
// are kept as ordered tables so each ratio's ranges stay auditable.
type band struct {
	Threshold float64
	Label     string
}

// Upper-bound tables: the first band whose threshold the value is
// strictly below wins; otherwise the fallback applies.
var (
	peBands = []band{
		{15, "Undervalued"},
		{25, "Fair Value"},
	}
	pbBands = []band{
		{1, "Undervalued"},
		{3, "Fair Value"},
	}
)

// Lower-bound tables: the first band whose threshold the value is
// strictly above wins; otherwise the fallback applies.
var (
	roeBands = []band{
		{20, "Excellent"},
		{15, "Good"},
		{10, "Average"},
	}
	liquidityBands = []band{
		{2, "Strong Liquidity"},
		{1, "Adequate Liquidity"},
	}
)

var debtBands = []band{
	{0.5, "Low Debt"},
	{1.5, "Moderate Debt"},
}

func bandBelow(v float64, bands []band, fallback string) string {
	for _, b := range bands {
		if v < b.Threshold {
			return b.Label
		}
	}
	return fallback
}

func bandAbove(v float64, bands []band, fallback string) string {
	for _, b := range bands {
		if v > b.Threshold {
			return b.Label
		}
	}
	return fallback
}

// InterpretPE bands a price/earnings ratio. Zero or negative means the
// ratio is unavailable or meaningless.
func InterpretPE(pe float64) string {
	if pe <= 0 {
		return "N/A"
	}
	return bandBelow(pe, peBands, "Overvalued")
}

// InterpretPB bands a price/book ratio.
func InterpretPB(pb float64) string {
	if pb <= 0 {
		return "N/A"
	}
	return bandBelow(pb, pbBands, "Overvalued")
}

// InterpretROE bands a return-on-equity fraction (0.15 == 15%).
func InterpretROE(roe float64) string {
	if roe == 0 {
		return "N/A"
	}
	return bandAbove(roe*100, roeBands, "Poor")
}

// InterpretDebt bands a debt/equity ratio.
func InterpretDebt(debtToEquity float64) string {
	if debtToEquity == 0 {
		return "N/A"
	}
	return bandBelow(debtToEquity, debtBands, "High Debt")
}

// InterpretLiquidity bands a current ratio.
func InterpretLiquidity(currentRatio float64) string {
	if currentRatio == 0 {
		return "N/A"
	}
	return bandAbove(currentRatio, liquidityBands, "Weak Liquidity")
}
