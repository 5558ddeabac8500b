package domain

import (
	"encoding/json"
	"strings"

	"github.com/Scusemua/go-utils/config"
	"github.com/pkg/errors"

	"github.com/scusemua/chainmap/common/utils/hashmap"
	"github.com/scusemua/chainmap/wordcount"
)

const (
	DefaultNumResults   = 10
	DefaultCapacity     = wordcount.DefaultCapacity
	DefaultHashFunction = hashmap.HashFunctionWeighted
	DefaultTieBreak     = string(wordcount.TieBreakLexical)
)

var (
	ErrInputRequired = errors.New("an input file must be specified with -input")
)

type WordCountOptions struct {
	config.LoggerOptions `yaml:",inline" json:"logger_options"`

	Input        string `name:"input" description:"Path to the text file whose words should be counted." yaml:"input" json:"input"`
	NumResults   int    `name:"n" description:"Number of most common words to print." yaml:"n" json:"n"`
	Capacity     int    `name:"capacity" description:"Number of buckets in the hash table." yaml:"capacity" json:"capacity"`
	HashFunction string `name:"hash" description:"Hash function to use: 'weighted' or 'sum'." yaml:"hash" json:"hash"`
	TieBreak     string `name:"tie_break" description:"Order of words with equal counts: 'lexical' or 'first_seen'." yaml:"tie_break" json:"tie_break"`

	Render             bool `name:"render" description:"Print the layout of the hash table after counting." yaml:"render" json:"render"`
	Watch              bool `name:"watch" description:"Count again every time the input file changes." yaml:"watch" json:"watch"`
	PrettyPrintOptions bool `name:"pretty_print_options" description:"Print the options as indented JSON at startup." yaml:"pretty_print_options" json:"pretty_print_options"`
}

// Validate fills in the default hash function and tie-break order when they are unset and rejects invalid options.
func (o *WordCountOptions) Validate() error {
	if o.Input == "" {
		return ErrInputRequired
	}

	if o.NumResults <= 0 {
		return errors.Wrapf(wordcount.ErrInvalidResultCount, "-n must be positive, got %d", o.NumResults)
	}

	if o.Capacity <= 0 {
		return errors.Wrapf(hashmap.ErrInvalidCapacity, "-capacity must be positive, got %d", o.Capacity)
	}

	if o.HashFunction == "" {
		o.HashFunction = DefaultHashFunction
	}

	if _, err := hashmap.HasherByName(o.HashFunction); err != nil {
		return errors.Wrapf(err, "valid hash functions are: %s", strings.Join(hashmap.HashFunctionNames(), ", "))
	}

	if o.TieBreak == "" {
		o.TieBreak = DefaultTieBreak
	}

	if _, err := wordcount.ParseTieBreak(o.TieBreak); err != nil {
		return err
	}

	return nil
}

// CounterOptions converts the options into the options of a wordcount.Counter.
//
// CounterOptions should only be called after Validate has returned successfully.
func (o *WordCountOptions) CounterOptions() []wordcount.Option {
	hasher, err := hashmap.HasherByName(o.HashFunction)
	if err != nil {
		panic(err)
	}

	return []wordcount.Option{
		wordcount.WithCapacity(o.Capacity),
		wordcount.WithHasher(hasher),
		wordcount.WithTieBreak(wordcount.TieBreak(o.TieBreak)),
	}
}

// PrettyString is the same as String, except that PrettyString calls json.MarshalIndent instead of json.Marshal.
func (o *WordCountOptions) PrettyString(indentSize int) string {
	indentBuilder := strings.Builder{}
	for i := 0; i < indentSize; i++ {
		indentBuilder.WriteString(" ")
	}

	m, err := json.MarshalIndent(o, "", indentBuilder.String())
	if err != nil {
		panic(err)
	}

	return string(m)
}

func (o *WordCountOptions) String() string {
	m, err := json.Marshal(o)
	if err != nil {
		panic(err)
	}

	return string(m)
}
