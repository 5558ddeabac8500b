package domain_test

import (
	"strings"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/scusemua/chainmap/common/utils/hashmap"
	"github.com/scusemua/chainmap/wordcount"
	"github.com/scusemua/chainmap/wordcount/domain"
)

var _ = Describe("WordCountOptions", func() {
	It("should require an input file", func() {
		opts := &domain.WordCountOptions{}
		Expect(opts.Validate()).To(MatchError(domain.ErrInputRequired))
	})

	It("should fill in the default hash function and tie-break order", func() {
		opts := &domain.WordCountOptions{Input: "alice.txt", NumResults: 3, Capacity: 16}
		Expect(opts.Validate()).To(Succeed())

		Expect(opts.NumResults).To(Equal(3))
		Expect(opts.Capacity).To(Equal(16))
		Expect(opts.HashFunction).To(Equal(hashmap.HashFunctionWeighted))
		Expect(opts.TieBreak).To(Equal(string(wordcount.TieBreakLexical)))
	})

	It("should reject non-positive capacities", func() {
		for _, capacity := range []int{0, -5} {
			opts := &domain.WordCountOptions{Input: "alice.txt", NumResults: 3, Capacity: capacity}
			Expect(opts.Validate()).To(MatchError(hashmap.ErrInvalidCapacity))
			Expect(opts.Capacity).To(Equal(capacity))
		}
	})

	It("should reject non-positive result counts", func() {
		for _, n := range []int{0, -1} {
			opts := &domain.WordCountOptions{Input: "alice.txt", NumResults: n, Capacity: domain.DefaultCapacity}
			Expect(opts.Validate()).To(MatchError(wordcount.ErrInvalidResultCount))
			Expect(opts.NumResults).To(Equal(n))
		}
	})

	It("should reject unknown hash functions and tie-break orders", func() {
		opts := &domain.WordCountOptions{Input: "alice.txt", NumResults: 3, Capacity: 16, HashFunction: "sha256"}
		Expect(opts.Validate()).To(MatchError(hashmap.ErrUnknownHashFunction))

		opts = &domain.WordCountOptions{Input: "alice.txt", NumResults: 3, Capacity: 16, TieBreak: "random"}
		Expect(opts.Validate()).To(MatchError(wordcount.ErrUnknownTieBreak))
	})

	It("should build counter options that count with the configured table", func() {
		opts := &domain.WordCountOptions{Input: "alice.txt", NumResults: 2, Capacity: 3, HashFunction: "sum", TieBreak: "first_seen"}
		Expect(opts.Validate()).To(Succeed())

		counter, err := wordcount.NewCounter(opts.CounterOptions()...)
		Expect(err).ToNot(HaveOccurred())
		Expect(counter.Table().Capacity()).To(Equal(3))

		Expect(counter.Consume(strings.NewReader("The cat sat. The CAT ran."))).To(Succeed())
		top, err := counter.Top(opts.NumResults)
		Expect(err).ToNot(HaveOccurred())
		Expect(top).To(Equal([]wordcount.WordCount{{Word: "the", Count: 2}, {Word: "cat", Count: 2}}))
	})

	It("should render itself as JSON", func() {
		opts := &domain.WordCountOptions{Input: "alice.txt", NumResults: 5}
		Expect(opts.String()).To(ContainSubstring(`"input":"alice.txt"`))
		Expect(opts.PrettyString(2)).To(ContainSubstring(`"n": 5`))
	})
})
