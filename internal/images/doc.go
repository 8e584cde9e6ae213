// Package images turns source images into responsive WebP variants.
//
// Every source is classified into one of fifteen standard aspect ratios,
// center-cropped to it and resized to a fixed ladder of breakpoint widths.
// Variants are written next to each other as <base>-w<width>.webp under the
// image URL prefix. A variant whose file already exists is never encoded
// again: the cache is keyed on the output path alone, so replacing a source
// image requires deleting its variants.
package images
