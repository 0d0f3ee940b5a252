package callfsm

// Version is the library version, surfaced by the callfsm CLI.
const Version = "0.1.0"
