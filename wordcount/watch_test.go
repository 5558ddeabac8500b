package wordcount_test

import (
	"context"
	"os"
	"path/filepath"
	"sync/atomic"
	"time"

	"github.com/pkg/errors"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/scusemua/chainmap/wordcount"
)

var _ = Describe("Watch", func() {
	var (
		dir  string
		path string
	)

	BeforeEach(func() {
		dir = GinkgoT().TempDir()
		path = filepath.Join(dir, "input.txt")
		Expect(os.WriteFile(path, []byte("initial"), 0644)).To(Succeed())
	})

	It("should call back when the file is written and stop when the context is cancelled", func() {
		ctx, cancel := context.WithCancel(context.Background())
		defer cancel()

		var calls atomic.Int32
		done := make(chan error, 1)
		go func() {
			done <- wordcount.Watch(ctx, path, func() error {
				calls.Add(1)
				return nil
			})
		}()

		Eventually(func() int32 {
			Expect(os.WriteFile(path, []byte("changed"), 0644)).To(Succeed())
			return calls.Load()
		}, 5*time.Second, 100*time.Millisecond).Should(BeNumerically(">", 0))

		cancel()
		Eventually(done, 5*time.Second).Should(Receive(BeNil()))
	})

	It("should ignore other files in the same directory", func() {
		ctx, cancel := context.WithTimeout(context.Background(), 500*time.Millisecond)
		defer cancel()

		var calls atomic.Int32
		writerDone := make(chan struct{})
		go func() {
			defer GinkgoRecover()
			defer close(writerDone)
			for ctx.Err() == nil {
				Expect(os.WriteFile(filepath.Join(dir, "other.txt"), []byte("noise"), 0644)).To(Succeed())
				time.Sleep(50 * time.Millisecond)
			}
		}()

		err := wordcount.Watch(ctx, path, func() error {
			calls.Add(1)
			return nil
		})
		Expect(err).ToNot(HaveOccurred())
		Eventually(writerDone, time.Second).Should(BeClosed())
		Expect(calls.Load()).To(Equal(int32(0)))
	})

	It("should return the error of the callback", func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()

		errStop := errors.New("stop")
		done := make(chan error, 1)
		go func() {
			done <- wordcount.Watch(ctx, path, func() error {
				return errStop
			})
		}()

		Eventually(func() bool {
			Expect(os.WriteFile(path, []byte("changed"), 0644)).To(Succeed())
			select {
			case err := <-done:
				return errors.Is(err, errStop)
			default:
				return false
			}
		}, 5*time.Second, 100*time.Millisecond).Should(BeTrue())
	})

	It("should fail when the directory does not exist", func() {
		err := wordcount.Watch(context.Background(), filepath.Join(dir, "missing", "input.txt"), func() error {
			return nil
		})
		Expect(err).To(HaveOccurred())
	})
})
