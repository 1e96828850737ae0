// Package grid provides keyboard-driven positional navigation over items
// laid out as a row-major grid.
//
// The layers, from the bottom up:
//
//   - Stepper: pure index arithmetic for a grid shape.
//   - Walker: binds a Stepper to an Apply(command, index) call.
//   - ObjectNavigator: maps items to indices by identity and owns the
//     current selection.
//   - Navigator: lazily builds an ObjectNavigator from an item provider and
//     routes key events to it.
//
// Items are compared with ==, so callers that want reference identity use
// pointer item types.
package grid
