package color

// CorrectGamma applies the LED driver's per-channel brightness curve. Only
// raw LED sinks need it; terminals already expect sRGB.
func (c RGB) CorrectGamma() RGB {
	return RGB{R: ledGamma[c.R], G: ledGamma[c.G], B: ledGamma[c.B]}
}
