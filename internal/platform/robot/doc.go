// Package robot provides the host input backend: pointer injection through
// robotgo and the global keyboard hook through gohook.
// Both libraries require CGo. When CGo is disabled only the keycode tables
// compile and no backend registers itself.
package robot
