package render

// Capabilities describes the pg_trgm features available on a server.
type Capabilities struct {
	WordSimilarity       bool // <%, %>, <<->, <->>, word_similarity() (pg_trgm 1.2)
	StrictWordSimilarity bool // <<%, %>>, <<<->, <->>>, strict_word_similarity() (pg_trgm 1.4)
}

// Minimum server_version_num for each feature group.
const (
	WordSimilarityVersion       = 90600
	StrictWordSimilarityVersion = 110000
)

// CapabilitiesFor returns the pg_trgm features bundled with a server, given its
// server_version_num (for example 110005). Zero means the latest release.
func CapabilitiesFor(versionNum int) Capabilities {
	if versionNum == 0 {
		return Capabilities{WordSimilarity: true, StrictWordSimilarity: true}
	}
	return Capabilities{
		WordSimilarity:       versionNum >= WordSimilarityVersion,
		StrictWordSimilarity: versionNum >= StrictWordSimilarityVersion,
	}
}
