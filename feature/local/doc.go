// Package local scans a photo library stored on the filesystem.
//
// The library layout is one directory per album directly under the
// configured root:
//
//	Pictures/
//	  Vacation 2023/
//	    IMG_0001.jpg
//	    RAW/IMG_0001.heic
//	  Family/
//	    birthday.mp4
//
// Albums are the top-level directories only; nesting below an album groups
// files but never creates further albums. Item counts include media files at
// any depth, matching how photo services report album sizes.
package local
