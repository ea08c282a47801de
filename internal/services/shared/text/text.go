// Package text renders design-system typography.
package text

// Variant selects a typography style.
type Variant string

const (
	Body1     Variant = "body1"
	Body2     Variant = "body2"
	Subtitle1 Variant = "subtitle1"
	Caption   Variant = "caption"
)

var variantStyles = map[Variant]string{
	Body1:     "font-size:14px;line-height:20px;font-weight:500",
	Body2:     "font-size:14px;line-height:20px;font-weight:400",
	Subtitle1: "margin:0;font-size:16px;line-height:24px;font-weight:500",
	Caption:   "font-size:12px;line-height:16px;font-weight:400",
}

// Normalize maps unknown variants to Body1.
func Normalize(v Variant) Variant {
	if _, ok := variantStyles[v]; ok {
		return v
	}
	return Body1
}

// Class returns the class name shared by every element of variant v.
func Class(v Variant) string {
	return "text-" + string(Normalize(v))
}

func styleFor(v Variant) string {
	return variantStyles[Normalize(v)]
}
