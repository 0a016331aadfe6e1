package player_test

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/san-kum/algoviz/internal/player"
	"github.com/san-kum/algoviz/internal/trace"
)

func sequence(n int) trace.Sequence {
	rec := trace.NewRecorder(n)
	rec.Record(trace.Snapshot{Kind: trace.KindInit, Message: "start", Primary: []int{2, 0, 1}})
	for i := 1; i < n-1; i++ {
		rec.Record(trace.Snapshot{Kind: trace.KindSwap, Message: "swap", Primary: []int{0, 2, 1}})
	}
	rec.Finish(trace.Snapshot{Kind: trace.KindDone, Message: "sorted", Primary: []int{0, 1, 2}})
	return rec.Sequence()
}

var _ = Describe("Player", func() {
	var p *player.Player

	BeforeEach(func() {
		var err error
		p, err = player.New(sequence(5))
		Expect(err).NotTo(HaveOccurred())
	})

	Describe("construction", func() {
		It("starts at the initial snapshot", func() {
			Expect(p.Cursor()).To(Equal(0))
			Expect(p.Current().Kind).To(Equal(trace.KindInit))
			Expect(p.IsComplete()).To(BeFalse())
		})

		It("rejects an empty sequence", func() {
			_, err := player.New(trace.Sequence{})
			Expect(err).To(MatchError(trace.ErrEmptySequence))
		})

		It("rejects a sequence without a terminal frame", func() {
			seq := sequence(5)[:3]
			_, err := player.New(seq)
			Expect(err).To(HaveOccurred())
		})
	})

	Describe("Advance", func() {
		It("moves one step and returns the new snapshot", func() {
			s := p.Advance()
			Expect(p.Cursor()).To(Equal(1))
			Expect(s.Step).To(Equal(1))
		})

		It("clamps at the terminal snapshot for any extra calls", func() {
			for i := 0; i < p.Len()+7; i++ {
				p.Advance()
			}
			Expect(p.Cursor()).To(Equal(p.Len() - 1))
			Expect(p.Advance().Terminal).To(BeTrue())
			Expect(p.IsComplete()).To(BeTrue())
		})
	})

	Describe("Retreat", func() {
		It("moves one step back", func() {
			p.Seek(3)
			Expect(p.Retreat().Step).To(Equal(2))
		})

		It("is a no-op at the initial snapshot", func() {
			Expect(p.Retreat().Step).To(Equal(0))
			Expect(p.Cursor()).To(Equal(0))
		})
	})

	Describe("Reset", func() {
		It("returns to the initial snapshot", func() {
			p.Seek(4)
			Expect(p.Reset().Step).To(Equal(0))
			Expect(p.IsComplete()).To(BeFalse())
		})

		It("is idempotent", func() {
			p.Seek(2)
			first := p.Reset()
			second := p.Reset()
			Expect(first.Equal(second)).To(BeTrue())
			Expect(p.Cursor()).To(Equal(0))
		})
	})

	Describe("Seek", func() {
		It("clamps below zero", func() {
			Expect(p.Seek(-3).Step).To(Equal(0))
		})

		It("clamps past the end", func() {
			Expect(p.Seek(99).Terminal).To(BeTrue())
		})

		It("lands exactly in range", func() {
			Expect(p.Seek(2).Step).To(Equal(2))
		})
	})

	Describe("Current", func() {
		It("never moves the cursor", func() {
			p.Seek(2)
			for i := 0; i < 5; i++ {
				Expect(p.Current().Step).To(Equal(2))
			}
			Expect(p.Cursor()).To(Equal(2))
		})

		It("hands out snapshots that cannot corrupt the sequence", func() {
			s := p.Current()
			s.Primary[0] = 99
			s.Message = "tampered"
			again := p.Current()
			Expect(again.Primary[0]).To(Equal(2))
			Expect(again.Message).To(Equal("start"))
		})
	})

	Describe("replay", func() {
		It("reproduces identical snapshots when scrubbing back and forth", func() {
			forward := make([]trace.Snapshot, 0, p.Len())
			for i := 0; i < p.Len(); i++ {
				forward = append(forward, p.Seek(i))
			}
			p.Seek(p.Len() - 1)
			for i := p.Len() - 1; i >= 0; i-- {
				Expect(p.Seek(i).Equal(forward[i])).To(BeTrue())
			}
		})

		It("does not share state between players on the same sequence", func() {
			seq := sequence(5)
			a, err := player.New(seq)
			Expect(err).NotTo(HaveOccurred())
			b, err := player.New(seq)
			Expect(err).NotTo(HaveOccurred())

			a.Advance()
			a.Advance()
			Expect(b.Cursor()).To(Equal(0))
			Expect(b.Current().Equal(seq[0])).To(BeTrue())
		})
	})
})
