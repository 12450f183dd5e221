// Package card renders a catalog item as a bordered terminal card.
//
// Records are open-ended maps; Decode pulls the house-plant fields a card
// shows (names, family, origin, care) and tolerates both single values and
// lists. Render never fails: a record with nothing recognisable still
// produces a card titled by its id.
package card
