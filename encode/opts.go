package encode

type EncodeOption func(*EncState)

// EncodeColors turns on colored output using the given role map.
func EncodeColors(c *Colors) EncodeOption {
	return func(es *EncState) { es.colors = c }
}
