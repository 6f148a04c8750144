// Package roster ingests player records and exposes club co-membership as a
// relation the bfs and analysis packages can consume.
//
// Players are keyed by their trimmed, lower-cased name. When the same key
// appears twice the record with the strictly higher Overall rating wins; the
// club partition still gains the key for every club it was listed under.
//
//	r, stats, err := roster.LoadFile("FIFA17_official_data.csv", log)
//	path, err := r.FindConnection("L. Messi", "Neymar")
//
// Two views of the data are offered. Teammates is a bfs.NeighborFunc over the
// club partition and needs no edges at all; Graph materializes the partition
// as a core.Graph (a clique per club) for the structural analyzers.
package roster
