// Package icons defines the icon identifiers used by card titles.
//
// The catalog maps stable identifiers to labels and Lucide symbol names.
// Pages render Sprite once and each icon references its symbol.
package icons
