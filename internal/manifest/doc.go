// Package manifest turns the plugin manifest into the set of icon files that
// must stay in the icon library.
//
// Loading strips the reserved settings entry and deduplicates the remaining
// icon references. Resolution splits each reference into segments, maps the
// leading prefix segment to an icon set folder and joins the normalized
// remainder into a file name:
//
//	FasAddressBook -> <icons>/font-awesome-solid/AddressBook.svg
package manifest
