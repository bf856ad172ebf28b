package models

// TLDOptions is the curated list offered to users when generating names.
var TLDOptions = []string{
	".com", ".io", ".ai", ".co", ".net", ".org", ".app", ".shop", ".store",
	".dev", ".xyz", ".online", ".tech", ".site", ".co.uk", ".ca", ".de",
}
