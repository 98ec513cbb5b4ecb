package main

// Version is the grelly CLI version.
var Version = "0.1.0"
