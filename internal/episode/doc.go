// Package episode derives episode numbers from media filenames.
//
// Extraction runs an ordered list of independent pattern rules; the first
// rule that matches wins, which keeps precedence between the naming
// conventions explicit. A filename that matches no rule is a normal outcome,
// not an error — such files are still processed under fallback naming.
package episode
