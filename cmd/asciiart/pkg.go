// This package implements the command line tool that uses the API.
// It converts an image on the filesystem to ascii art and prints it to the terminal,
// or writes it to a text file with -o.
//
//	asciiart photo.png -w 80
//	asciiart photo.png -o photo.txt
//	asciiart batch ./images -o ./out
//
// Supported formats are .png, .jpg, .jpeg, .gif, .bmp, .tiff and .webp
// (See github.com/nebbyJammin/imgascii/pkg/asciiart).
package main
