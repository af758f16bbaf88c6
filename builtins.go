package aocla

import (
	"sort"
)

// requireStack fails with "Out of stack" unless the stack holds at least n
// entries.
func requireStack(ctx *Context, n int) error {
	if len(ctx.Stack) < n {
		return ctx.fail("", "Out of stack")
	}
	return nil
}

// requireTypes fails with "Out of stack" or "Type mismatch" unless the top
// len(masks) stack entries match masks in order -- masks[0] against the
// deepest of them, masks[len-1] against the top, matching how this
// package's stack-effect notation lists arguments left (deep) to right (top).
func requireTypes(ctx *Context, masks ...TypeMask) error {
	if err := requireStack(ctx, len(masks)); err != nil {
		return err
	}
	n := len(ctx.Stack)
	for i, mask := range masks {
		v := ctx.Stack[n-len(masks)+i]
		if v.kind.Mask()&mask == 0 {
			return ctx.fail("", "Type mismatch")
		}
	}
	return nil
}

// installBuiltins registers the native procedure library described in
// §4.5: arithmetic, comparison, sort, control flow, definition, evaluation
// primitives, and the I/O and container operations.
func installBuiltins(ctx *Context) {
	ctx.defineNative("+", biArith(func(a, b int) int { return a + b }))
	ctx.defineNative("-", biArith(func(a, b int) int { return a - b }))
	ctx.defineNative("*", biArith(func(a, b int) int { return a * b }))
	ctx.defineNative("/", biArith(func(a, b int) int { return a / b }))

	ctx.defineNative("==", biCompare(func(c int) bool { return c == 0 }))
	ctx.defineNative("!=", biCompare(func(c int) bool { return c != 0 }))
	ctx.defineNative("<", biCompare(func(c int) bool { return c < 0 }))
	ctx.defineNative("<=", biCompare(func(c int) bool { return c <= 0 }))
	ctx.defineNative(">", biCompare(func(c int) bool { return c > 0 }))
	ctx.defineNative(">=", biCompare(func(c int) bool { return c >= 0 }))

	ctx.defineNative("sort", biSort)
	ctx.defineNative("define", biDefine)

	ctx.defineNative("if", biControl(false, false))
	ctx.defineNative("if-else", biControl(true, false))
	ctx.defineNative("while", biControl(false, true))

	ctx.defineNative("eval", biEval)
	ctx.defineNative("up-eval", biUpEval)

	ctx.defineNative("prin", biPrin)
	ctx.defineNative("print", biPrint)

	ctx.defineNative("#", biLength)
	ctx.defineNative("<-", biAppend)
	ctx.defineNative("@", biAt)
	ctx.defineNative("^", biConcat)
	ctx.defineNative("to-tuple", biToTuple)
	ctx.defineNative(".", biShow)
}

func biArith(op func(a, b int) int) func(*Context) error {
	return func(ctx *Context) error {
		if err := requireTypes(ctx, MaskInt, MaskInt); err != nil {
			return err
		}
		b, _ := ctx.pop()
		a, _ := ctx.pop()
		ctx.push(NewInt(op(a.i, b.i), ctx.frame.line))
		Release(a)
		Release(b)
		return nil
	}
}

func biCompare(accept func(cmp int) bool) func(*Context) error {
	return func(ctx *Context) error {
		if err := requireStack(ctx, 2); err != nil {
			return err
		}
		b, _ := ctx.pop()
		a, _ := ctx.pop()
		cmp, ok := compareValues(a, b)
		if !ok {
			ctx.push(a)
			ctx.push(b)
			return ctx.fail("", "Type mismatch in comparison")
		}
		ctx.push(NewBool(accept(cmp), ctx.frame.line))
		Release(a)
		Release(b)
		return nil
	}
}

func biSort(ctx *Context) error {
	if err := requireTypes(ctx, MaskList); err != nil {
		return err
	}
	v, _ := ctx.pop()
	v = EnsureExclusive(v)

	var sortErr error
	sort.SliceStable(v.elems, func(i, j int) bool {
		if sortErr != nil {
			return false
		}
		cmp, ok := compareValues(v.elems[i], v.elems[j])
		if !ok {
			sortErr = ctx.fail("", "Type mismatch in comparison")
			return false
		}
		return cmp < 0
	})
	if sortErr != nil {
		Release(v)
		return sortErr
	}
	ctx.push(v)
	return nil
}

// biDefine implements `define ( body:List name:Symbol -- )`: see
// Context.Define for the unconditional-overwrite semantics this follows.
func biDefine(ctx *Context) error {
	if err := requireTypes(ctx, MaskList, MaskSymbol); err != nil {
		return err
	}
	name, _ := ctx.pop()
	body, _ := ctx.pop()
	ctx.Define(string(name.text), body)
	Release(name)
	return nil
}

// biControl implements if, if-else, and while: withElse requires a third
// (else) List on the stack; loop re-evaluates cond/body while cond leaves
// true, otherwise the branch runs at most once.
func biControl(withElse, loop bool) func(*Context) error {
	return func(ctx *Context) (err error) {
		if withElse {
			if err := requireTypes(ctx, MaskList, MaskList, MaskList); err != nil {
				return err
			}
		} else {
			if err := requireTypes(ctx, MaskList, MaskList); err != nil {
				return err
			}
		}

		var elseBranch *Value
		if withElse {
			elseBranch, _ = ctx.pop()
		}
		thenBranch, _ := ctx.pop()
		cond, _ := ctx.pop()
		defer func() {
			Release(cond)
			Release(thenBranch)
			Release(elseBranch)
		}()

		for {
			if err := ctx.Eval(cond); err != nil {
				return err
			}
			if err := requireTypes(ctx, MaskBool); err != nil {
				return err
			}
			result, _ := ctx.pop()
			taken := result.b
			Release(result)

			if taken {
				if err := ctx.Eval(thenBranch); err != nil {
					return err
				}
				if loop {
					continue
				}
			} else if withElse {
				if err := ctx.Eval(elseBranch); err != nil {
					return err
				}
			}
			return nil
		}
	}
}

func biEval(ctx *Context) error {
	if err := requireTypes(ctx, MaskList); err != nil {
		return err
	}
	list, _ := ctx.pop()
	err := ctx.Eval(list)
	Release(list)
	return err
}

// biUpEval implements up-eval: run list against the caller's frame instead
// of the current one, so a quotation passed into a higher-order word like
// map captures into the invoking procedure's locals rather than map's own.
func biUpEval(ctx *Context) error {
	if err := requireTypes(ctx, MaskList); err != nil {
		return err
	}
	list, _ := ctx.pop()

	var swapped *Frame
	if ctx.frame.previous != nil {
		swapped = ctx.frame
		ctx.frame = ctx.frame.previous
	}
	err := ctx.Eval(list)
	if swapped != nil {
		ctx.frame = swapped
	}
	Release(list)
	return err
}

func biPrin(ctx *Context) error {
	if err := requireStack(ctx, 1); err != nil {
		return err
	}
	v, _ := ctx.pop()
	Fprint(ctx.out, v, false, false)
	ctx.out.Flush()
	Release(v)
	return nil
}

func biPrint(ctx *Context) error {
	if err := biPrin(ctx); err != nil {
		return err
	}
	ctx.out.Write([]byte{'\n'})
	ctx.out.Flush()
	return nil
}

func biLength(ctx *Context) error {
	if err := requireTypes(ctx, MaskList|MaskTuple|MaskString|MaskSymbol); err != nil {
		return err
	}
	v, _ := ctx.pop()
	var n int
	switch v.kind {
	case List, Tuple:
		n = len(v.elems)
	default:
		n = len(v.text)
	}
	Release(v)
	ctx.push(NewInt(n, ctx.frame.line))
	return nil
}

// biAppend implements `<- ( l:List x -- l' )`.
func biAppend(ctx *Context) error {
	if err := requireTypes(ctx, MaskList, MaskAny); err != nil {
		return err
	}
	elem, _ := ctx.pop()
	list, _ := ctx.pop()
	list = EnsureExclusive(list)
	list.elems = append(list.elems, elem)
	ctx.push(list)
	return nil
}

// biAt implements `@ ( x:List|Tuple|String i:Int -- element|Bool )`.
func biAt(ctx *Context) error {
	if err := requireTypes(ctx, MaskList|MaskTuple|MaskString, MaskInt); err != nil {
		return err
	}
	idxVal, _ := ctx.pop()
	obj, _ := ctx.pop()
	idx := idxVal.i
	Release(idxVal)

	length := len(obj.elems)
	if obj.kind == String {
		length = len(obj.text)
	}
	if idx < 0 {
		idx += length
	}
	if idx < 0 || idx >= length {
		ctx.push(NewBool(false, ctx.frame.line))
	} else if obj.kind == String {
		ctx.push(NewString(obj.text[idx:idx+1], ctx.frame.line))
	} else {
		el := obj.elems[idx]
		Retain(el)
		ctx.push(el)
	}
	Release(obj)
	return nil
}

// biConcat implements `^ ( a b -- a++b )`: both operands must have the same
// outer Kind; List/Tuple concatenate element-wise, String/Symbol byte-wise.
func biConcat(ctx *Context) error {
	if err := requireStack(ctx, 2); err != nil {
		return err
	}
	top, _ := ctx.peek(0)
	under, _ := ctx.peek(1)
	if top.kind != under.kind {
		return ctx.fail("", "concatenate expects two objects of the same type")
	}
	if err := requireTypes(ctx,
		MaskList|MaskTuple|MaskString|MaskSymbol,
		MaskList|MaskTuple|MaskString|MaskSymbol,
	); err != nil {
		return err
	}

	source, _ := ctx.pop()
	dest, _ := ctx.pop()
	dest = EnsureExclusive(dest)

	switch dest.kind {
	case String, Symbol:
		dest.text = append(dest.text, source.text...)
	default:
		for _, e := range source.elems {
			Retain(e)
		}
		dest.elems = append(dest.elems, source.elems...)
	}
	ctx.push(dest)
	Release(source)
	return nil
}

// biToTuple implements `to-tuple ( l:List -- t:Tuple )`: reinterprets a
// list in place. Whether the elements satisfy the tuple invariant is only
// enforced at parse time, matching the source this is modeled on.
func biToTuple(ctx *Context) error {
	if err := requireTypes(ctx, MaskList); err != nil {
		return err
	}
	v, _ := ctx.pop()
	v = EnsureExclusive(v)
	v.kind = Tuple
	v.quoted = false
	ctx.push(v)
	return nil
}

func biShow(ctx *Context) error {
	ctx.Show(ctx.out)
	ctx.out.Flush()
	return nil
}
