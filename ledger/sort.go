package ledger

import (
	"bytes"
	"sort"
)

func sortHashes(hs []Blake2bHash) {
	sort.Slice(hs, func(i, j int) bool { return bytes.Compare(hs[i].bytes, hs[j].bytes) < 0 })
}

func sortPolicyIDs(ps []PolicyID) {
	sort.Slice(ps, func(i, j int) bool { return bytes.Compare(ps[i][:], ps[j][:]) < 0 })
}

func sortAssetNames(ns []AssetName) {
	sort.Slice(ns, func(i, j int) bool { return ns[i] < ns[j] })
}
