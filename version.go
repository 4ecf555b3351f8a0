package nanorl

// Version identifies this implementation.
const Version = "v2-pre0.1"
