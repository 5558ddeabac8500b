package wordcount

import (
	"bufio"
	"cmp"
	"fmt"
	"io"
	"os"
	"slices"

	"github.com/Scusemua/go-utils/config"
	"github.com/Scusemua/go-utils/logger"
	"github.com/elliotchance/orderedmap/v2"
	"github.com/pkg/errors"

	"github.com/scusemua/chainmap/common/utils/hashmap"
)

// DefaultCapacity is the number of buckets used by a Counter unless WithCapacity is given.
const DefaultCapacity = 2500

// TieBreak determines the order of words that occur the same number of times.
type TieBreak string

const (
	TieBreakLexical   TieBreak = "lexical"    // Ascending by word.
	TieBreakFirstSeen TieBreak = "first_seen" // In the order in which the words first appeared in the input.
)

// ParseTieBreak converts the name of a TieBreak into a TieBreak.
func ParseTieBreak(name string) (TieBreak, error) {
	switch TieBreak(name) {
	case TieBreakLexical, TieBreakFirstSeen:
		return TieBreak(name), nil
	default:
		return "", errors.Wrapf(ErrUnknownTieBreak, "\"%s\"", name)
	}
}

// WordCount is the number of occurrences of a single word.
type WordCount struct {
	Word  string `json:"word"`
	Count int    `json:"count"`
}

func (wc WordCount) String() string {
	return fmt.Sprintf("(%s, %d)", wc.Word, wc.Count)
}

type settings struct {
	capacity int
	hasher   hashmap.Hasher
	tieBreak TieBreak
}

// Option configures a Counter.
type Option func(*settings)

// WithCapacity sets the number of buckets of the Counter's hash table.
func WithCapacity(capacity int) Option {
	return func(s *settings) {
		s.capacity = capacity
	}
}

// WithHasher sets the hash function of the Counter's hash table.
func WithHasher(hasher hashmap.Hasher) Option {
	return func(s *settings) {
		s.hasher = hasher
	}
}

// WithTieBreak sets the order of words with equal counts.
func WithTieBreak(tieBreak TieBreak) Option {
	return func(s *settings) {
		s.tieBreak = tieBreak
	}
}

// Counter accumulates per-word counts in a hashmap.ChainedHashMap.
type Counter struct {
	table     *hashmap.ChainedHashMap[int]
	counts    *hashmap.MapCounter[string]
	firstSeen *orderedmap.OrderedMap[string, int]
	tieBreak  TieBreak
	total     int

	log logger.Logger
}

// NewCounter creates a new, empty Counter.
//
// By default, the Counter uses DefaultCapacity buckets, hashmap.WeightedSumOrdinals and TieBreakLexical.
func NewCounter(opts ...Option) (*Counter, error) {
	s := &settings{
		capacity: DefaultCapacity,
		hasher:   hashmap.WeightedSumOrdinals,
		tieBreak: TieBreakLexical,
	}
	for _, opt := range opts {
		opt(s)
	}

	if _, err := ParseTieBreak(string(s.tieBreak)); err != nil {
		return nil, err
	}

	table, err := hashmap.NewChainedHashMap[int](s.capacity, s.hasher)
	if err != nil {
		return nil, err
	}

	counter := &Counter{
		table:     table,
		counts:    hashmap.NewMapCounter[string](table),
		firstSeen: orderedmap.NewOrderedMap[string, int](),
		tieBreak:  s.tieBreak,
	}

	config.InitLogger(&counter.log, counter)

	return counter, nil
}

// Add counts one occurrence of the given word. The word is counted exactly as given.
func (c *Counter) Add(word string) int {
	if _, seen := c.firstSeen.Get(word); !seen {
		c.firstSeen.Set(word, c.firstSeen.Len())
	}

	c.total += 1
	return c.counts.Increment(word)
}

// AddLine tokenizes the given line and counts every word in it.
func (c *Counter) AddLine(line string) {
	for _, word := range Tokenize(line) {
		c.Add(word)
	}
}

// Consume counts every word read from r, one line at a time. Lines may be of any length.
func (c *Counter) Consume(r io.Reader) error {
	reader := bufio.NewReader(r)

	lines := 0
	for {
		line, err := reader.ReadString('\n')
		if len(line) > 0 {
			c.AddLine(line)
			lines += 1
		}

		if errors.Is(err, io.EOF) {
			break
		} else if err != nil {
			return errors.Wrapf(err, "failed to read line %d", lines+1)
		}
	}

	c.log.Debug("Read %d line(s): %d word(s), %d distinct. %s", lines, c.total, c.counts.Len(), c.table.Stats())

	return nil
}

// Count returns the number of occurrences of the given word.
func (c *Counter) Count(word string) int {
	return c.counts.Count(word)
}

// Distinct returns the number of distinct words counted.
func (c *Counter) Distinct() int {
	return c.counts.Len()
}

// Total returns the number of words counted, including repeats.
func (c *Counter) Total() int {
	return c.total
}

// Table returns the hash table in which the counts are stored.
func (c *Counter) Table() *hashmap.ChainedHashMap[int] {
	return c.table
}

// Reset discards every count. The capacity of the underlying table is unchanged.
func (c *Counter) Reset() {
	c.table.Clear()
	c.firstSeen = orderedmap.NewOrderedMap[string, int]()
	c.total = 0
}

// All returns every word and its count, sorted by count in descending order.
func (c *Counter) All() []WordCount {
	results := make([]WordCount, 0, c.table.Len())
	c.table.Range(func(word string, count int) bool {
		results = append(results, WordCount{Word: word, Count: count})
		return true
	})

	slices.SortFunc(results, func(a, b WordCount) int {
		if byCount := cmp.Compare(b.Count, a.Count); byCount != 0 {
			return byCount
		}

		if c.tieBreak == TieBreakFirstSeen {
			ia, _ := c.firstSeen.Get(a.Word)
			ib, _ := c.firstSeen.Get(b.Word)
			return cmp.Compare(ia, ib)
		}

		return cmp.Compare(a.Word, b.Word)
	})

	return results
}

// Top returns the n most common words. If fewer than n distinct words were counted, all of them are returned.
func (c *Counter) Top(n int) ([]WordCount, error) {
	if n <= 0 {
		return nil, errors.Wrapf(ErrInvalidResultCount, "got %d", n)
	}

	results := c.All()
	if n < len(results) {
		results = results[:n]
	}

	return results, nil
}

// TopWords counts the words read from r and returns the n most common ones.
func TopWords(r io.Reader, n int, opts ...Option) ([]WordCount, error) {
	if n <= 0 {
		return nil, errors.Wrapf(ErrInvalidResultCount, "got %d", n)
	}

	counter, err := NewCounter(opts...)
	if err != nil {
		return nil, err
	}

	if err = counter.Consume(r); err != nil {
		return nil, err
	}

	return counter.Top(n)
}

// TopWordsFile is like TopWords, but it reads the text from the file at the given path.
func TopWordsFile(path string, n int, opts ...Option) ([]WordCount, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to open \"%s\"", path)
	}
	defer f.Close()

	return TopWords(f, n, opts...)
}
