package model

// Namespace is the metadata namespace tag under which mission-specific
// properties are registered with the archive framework
const Namespace = "s5p"
