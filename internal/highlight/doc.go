// Package highlight marks phrasal verbs inside card text.
//
// Highlighting is an ordered list of passes, one per phrasal verb, longest
// phrase first. Each pass scans only text that no earlier pass has marked,
// so a phrase can never be wrapped twice and later passes never match
// inside an earlier marker. Chinese phrases match literally; English
// phrases match every inflection of the leading verb, using a table of
// irregular verbs and regular -s/-ed/-ing/-es forms otherwise.
package highlight
