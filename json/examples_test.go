package json

import (
	"fmt"
)

func ExampleT_Marshal() {
	fmt.Printf("%s\n", NewNumber(69420).Marshal(nil))
	fmt.Printf("%s\n", NewNumber(2.5).Marshal(nil))
	fmt.Printf("%s\n", NewBool(true).Marshal(nil))
	fmt.Printf("%s\n", New().Marshal(nil))
	fmt.Printf("%s\n", NewString("a string").Marshal(nil))
	l := New()
	l.SetList()
	l.PushBack(NewNumber(1))
	l.PushBack(NewBool(false))
	l.PushBack(New())
	fmt.Printf("%q\n", l.Marshal(nil))
	// Output:
	// 69420
	// 2.5
	// true
	// null
	// "a string"
	// "[ 1, false, null, ] "
}

func ExampleT_Insert() {
	o := New()
	o.SetObject()
	o.Insert([]byte("a"), NewNumber(1))
	o.Insert([]byte("b"), NewNumber(2))
	// members iterate in reverse insertion order
	fmt.Printf("%q\n", o.Marshal(nil))
	// Output:
	// "{ \"b\":2, \"a\":1, } "
}

func ExampleT_Get() {
	o := New()
	o.SetObject()
	slot, err := o.Get([]byte("volume"))
	if err != nil {
		return
	}
	slot.SetNumber(11)
	v, err := o.Lookup([]byte("volume"))
	if err != nil {
		return
	}
	fmt.Printf("%s\n", v.Marshal(nil))
	// Output:
	// 11
}
