// Command subsync batch-shifts subtitle timestamps and renames the results
// to match companion video files by episode number.
//
// The primary invocation takes a folder and a signed decimal shift in
// seconds:
//
//	subsync shift ./season-1 -5.43
//
// which rewrites every .srt and .ass file in the folder (originals are kept)
// and names each output after the video sharing its episode number.
// `subsync preview` shows the planned renames without writing, `subsync
// history` lists past runs, and `subsync config` manages the TOML
// configuration.
package main
