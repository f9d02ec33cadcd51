// Package kensaku compiles Japanese dictionary queries into tiered matchers.
//
// A query such as "犬&dog" is split on "&" into atoms, every atom is
// classified as kanji, kana, romaji or mixed text, and four matchers are
// compiled per atom: Exists, Locate, High and Medium. Dictionary lines are
// then classified by how well they match the whole query.
//
// Engine is the entry point:
//
//	engine, err := kensaku.NewEngine(kensaku.WithConfig(cfg))
//	if err != nil {
//	    return err
//	}
//	defer engine.Close()
//
//	hits, err := engine.Rank(ctx, core.Edict, "犬&dog", lines)
package kensaku
