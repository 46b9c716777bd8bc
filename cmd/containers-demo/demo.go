package main

import (
	"strconv"
	"strings"

	"hop.computer/containers/config"
	"hop.computer/containers/dialogue"
	"hop.computer/containers/flags"
	"hop.computer/containers/pkg/list"
	"hop.computer/containers/pkg/must"
	"hop.computer/containers/pkg/vec"
)

type demo struct {
	name  string
	title string
	run   func(*dialogue.Renderer, *config.Scenario)
}

var demos = []demo{
	{flags.DemoList, "doubly linked list", listDemo},
	{flags.DemoVec, "fixed-size vector", vecDemo},
}

func multiplyBy(x int, factors ...int) int {
	for _, f := range factors {
		x *= f
	}
	return x
}

func listDemo(r *dialogue.Renderer, s *config.Scenario) {
	r.Section(1, "Constructors")
	r.Step("creating an empty list")
	empty := list.New[int]()
	r.Value("Length", empty.Len())

	r.Step("creating a list from %v", s.List.Ints)
	ints := list.FromSlice(s.List.Ints)
	r.Value("Contents", ints)

	r.Step("creating a list of words")
	words := list.From(s.List.Words...)
	r.Value("Contents", words)

	r.Section(2, "Copy and move")
	r.Step("copying the list")
	cp := ints.Copy()
	*cp.At(0) = -1
	r.Value("Copy after writing -1 at 0", cp)
	r.Value("Original is untouched", ints)

	r.Step("moving the copy")
	moved := list.MoveFrom(cp)
	r.Value("Moved", moved)
	r.Value("Source length after move", cp.Len())

	r.Step("assigning by copy and by move")
	target := list.From(0)
	target.AssignCopy(ints)
	r.Value("After copy assignment", target)
	target.AssignMove(moved)
	r.Value("After move assignment", target)
	r.Value("Moved-from length", moved.Len())

	r.Step("swapping")
	target.Swap(empty)
	r.Value("Swapped into the empty list", empty)
	r.Value("Left behind", target.Len())

	r.Section(3, "Basic operations")
	r.Step("appending 10, 20, 30")
	target.PushBack(10)
	target.PushBack(20)
	target.PushBack(30)
	r.Value("Contents", target)
	r.Step("removing the last element")
	r.Value("Removed", target.PopBack())
	r.Value("Contents", target)

	r.Step("accessing elements with At")
	r.Value("Element 1", target.Get(1))
	if err := must.Catch(func() { target.At(s.List.Probe) }); err != nil {
		r.Error("At("+strconv.Itoa(s.List.Probe)+")", err)
	}

	r.Step("removing element %d", *s.List.RemoveAt)
	r.Value("Removed", ints.RemoveAt(*s.List.RemoveAt))
	r.Value("Contents", ints)
	r.Value("Length", ints.Len())

	r.Section(4, "Map")
	r.Step("multiplying by %d", s.List.Factor)
	r.Value("Original", ints)
	r.Value("Mapped", list.MapWith(ints, multiplyBy, s.List.Factor))
	r.Step("word lengths")
	r.Value("Lengths", list.Map(words, func(w string) int { return len(w) }))

	r.Section(5, "Release")
	r.Step("clearing the list")
	ints.Clear()
	r.Value("Length", ints.Len())
	r.Value("Removing from the empty list", ints.PopBack())
}

func vecDemo(r *dialogue.Renderer, s *config.Scenario) {
	r.Section(1, "General vector")
	r.Step("filling a 4 element vector by index")
	v4 := vec.New[float64, [4]float64]()
	for i := range v4.Len() {
		*v4.At(i) = float64(i)
	}
	r.Value("Vector", v4)
	r.Value("Sum with itself", v4.Add(v4))
	r.Value("Uniform", vec.Uniform[float64, [4]float64](1.5))

	r.Section(2, "2D vector")
	p := vec.Point2From([2]int(s.Vector.A))
	r.Value("Vector", p)
	r.Value("x", p.X())
	r.Value("y", p.Y())
	r.Step("writing 30 through index 0")
	*p.At(0) = 30
	r.Value("x", p.X())

	r.Section(3, "3D vector")
	q := vec.Point3From([3]int(s.Vector.B))
	r.Value("Vector", q)
	r.Value("Sum", q.Add(vec.NewPoint3(1, 1, 1)))
	r.Value("x, y, z", strings.Join([]string{strconv.Itoa(q.X()), strconv.Itoa(q.Y()), strconv.Itoa(q.Z())}, ", "))

	r.Step("reading out of range")
	r.Value("Get(5)", q.Get(5))
	if err := must.Catch(func() { q.At(5) }); err != nil {
		r.Error("At(5)", err)
	}
}
