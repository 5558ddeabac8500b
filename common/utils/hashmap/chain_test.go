package hashmap_test

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/scusemua/chainmap/common/utils/hashmap"
)

// reachable counts the entries that can be reached by following links from the head of the chain.
func reachable[V any](chain *hashmap.Chain[V]) int {
	n := 0
	for cur := chain.Head(); cur != nil; cur = cur.Next() {
		n += 1
	}
	return n
}

var _ = Describe("Chain", func() {
	var chain *hashmap.Chain[int]

	BeforeEach(func() {
		chain = hashmap.NewChain[int]()
	})

	It("should be created empty", func() {
		Expect(chain.Len()).To(Equal(0))
		Expect(chain.Head()).To(BeNil())
		Expect(chain.String()).To(Equal("[]"))
	})

	Describe("AddFront", func() {
		It("should link new entries at the head", func() {
			chain.AddFront("a", 1)
			chain.AddFront("b", 2)
			chain.AddFront("c", 3)

			Expect(chain.Len()).To(Equal(3))
			Expect(chain.Head().Key()).To(Equal("c"))
			Expect(chain.String()).To(Equal("[(c, 3) -> (b, 2) -> (a, 1)]"))
		})

		It("should not check for duplicate keys", func() {
			chain.AddFront("a", 1)
			chain.AddFront("a", 2)

			Expect(chain.Len()).To(Equal(2))
			Expect(chain.Find("a").Value).To(Equal(2))
		})
	})

	Describe("Find", func() {
		BeforeEach(func() {
			chain.AddFront("a", 1)
			chain.AddFront("b", 2)
			chain.AddFront("c", 3)
		})

		It("should return the matching entry", func() {
			entry := chain.Find("b")
			Expect(entry).ToNot(BeNil())
			Expect(entry.Key()).To(Equal("b"))
			Expect(entry.Value).To(Equal(2))
		})

		It("should return nil when the key is absent", func() {
			Expect(chain.Find("z")).To(BeNil())
		})

		It("should allow the value to be mutated in place", func() {
			chain.Find("a").Value = 100

			Expect(chain.Find("a").Value).To(Equal(100))
			Expect(chain.Len()).To(Equal(3))
		})
	})

	Describe("Remove", func() {
		It("should return false for an empty chain", func() {
			Expect(chain.Remove("a")).To(BeFalse())
			Expect(chain.Len()).To(Equal(0))
		})

		It("should remove the head, a middle entry and the tail", func() {
			chain.AddFront("tail", 1)
			chain.AddFront("middle", 2)
			chain.AddFront("inner", 3)
			chain.AddFront("head", 4)

			Expect(chain.Remove("head")).To(BeTrue())
			Expect(chain.String()).To(Equal("[(inner, 3) -> (middle, 2) -> (tail, 1)]"))

			Expect(chain.Remove("middle")).To(BeTrue())
			Expect(chain.String()).To(Equal("[(inner, 3) -> (tail, 1)]"))

			Expect(chain.Remove("tail")).To(BeTrue())
			Expect(chain.String()).To(Equal("[(inner, 3)]"))

			Expect(chain.Len()).To(Equal(1))
			Expect(reachable(chain)).To(Equal(1))
		})

		It("should return false when the key is absent", func() {
			chain.AddFront("a", 1)
			chain.AddFront("b", 2)

			Expect(chain.Remove("c")).To(BeFalse())
			Expect(chain.Len()).To(Equal(2))
		})
	})

	It("should keep its size equal to the number of reachable entries", func() {
		keys := []string{"k0", "k1", "k2", "k3", "k4", "k5"}
		for i, key := range keys {
			chain.AddFront(key, i)
			Expect(chain.Len()).To(Equal(reachable(chain)))
		}

		for _, key := range []string{"k3", "k0", "missing", "k5", "k3"} {
			chain.Remove(key)
			Expect(chain.Len()).To(Equal(reachable(chain)))
		}

		Expect(chain.Len()).To(Equal(3))
	})

	It("should clear every entry", func() {
		chain.AddFront("a", 1)
		chain.AddFront("b", 2)
		chain.Clear()

		Expect(chain.Len()).To(Equal(0))
		Expect(chain.Head()).To(BeNil())
		Expect(chain.Find("a")).To(BeNil())
	})

	It("should range from head to tail and stop early", func() {
		chain.AddFront("a", 1)
		chain.AddFront("b", 2)
		chain.AddFront("c", 3)

		visited := make([]string, 0, 3)
		chain.Range(func(key string, _ int) bool {
			visited = append(visited, key)
			return key != "b"
		})

		Expect(visited).To(Equal([]string{"c", "b"}))
	})
})
