package metric

// winklerPrefixWeight scales the common-prefix bonus. 0.1 with a prefix
// cap of 4 keeps the boosted score inside [0,1].
const winklerPrefixWeight = 0.1

// winklerPrefixCap bounds how many leading characters earn the bonus.
const winklerPrefixCap = 4

// JaroWinkler returns the Jaro-Winkler similarity of a and b, operating
// on Unicode scalar values. Symmetric; 1.0 only for equal strings; 0.0
// when exactly one side is empty or no characters match.
func JaroWinkler(a, b string) float64 {
	ra := []rune(a)
	rb := []rune(b)

	jaro := jaroSimilarity(ra, rb)
	if jaro == 0 {
		return 0
	}

	// Winkler bonus: boost proportional to the shared prefix length.
	prefix := 0
	for prefix < len(ra) && prefix < len(rb) && prefix < winklerPrefixCap {
		if ra[prefix] != rb[prefix] {
			break
		}
		prefix++
	}

	return jaro + float64(prefix)*winklerPrefixWeight*(1-jaro)
}

// jaroSimilarity computes the classic Jaro score: characters match when
// equal and within a window of half the longer length, transpositions
// are matched characters that appear out of order.
func jaroSimilarity(ra, rb []rune) float64 {
	la, lb := len(ra), len(rb)
	if la == 0 && lb == 0 {
		return 1
	}
	if la == 0 || lb == 0 {
		return 0
	}

	window := max(la, lb)/2 - 1
	if window < 0 {
		window = 0
	}

	matchedA := make([]bool, la)
	matchedB := make([]bool, lb)

	matches := 0
	for i := 0; i < la; i++ {
		lo := max(0, i-window)
		hi := min(lb, i+window+1)
		for j := lo; j < hi; j++ {
			if matchedB[j] || ra[i] != rb[j] {
				continue
			}
			matchedA[i] = true
			matchedB[j] = true
			matches++
			break
		}
	}

	if matches == 0 {
		return 0
	}

	// Count transpositions between the matched subsequences.
	transpositions := 0
	j := 0
	for i := 0; i < la; i++ {
		if !matchedA[i] {
			continue
		}
		for !matchedB[j] {
			j++
		}
		if ra[i] != rb[j] {
			transpositions++
		}
		j++
	}

	m := float64(matches)
	t := float64(transpositions) / 2
	return (m/float64(la) + m/float64(lb) + (m-t)/m) / 3
}
