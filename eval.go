package aocla

// Eval evaluates each element of list in turn against ctx's current frame,
// per §4.4: literals push a fresh reference to themselves, a quoted
// Tuple/Symbol pushes an unquoted deep copy, an unquoted Tuple captures
// locals, and an unquoted Symbol either reads a local ($x) or dispatches to
// a procedure. Evaluation stops at the first error, unwinding to the
// caller -- there is no recovery inside the core.
func (ctx *Context) Eval(list *Value) error {
	for _, elem := range list.elems {
		ctx.frame.line = elem.line

		switch elem.kind {
		case Tuple:
			if elem.quoted {
				cp := DeepCopy(elem)
				cp.quoted = false
				ctx.push(cp)
				continue
			}
			if err := ctx.captureLocals(elem); err != nil {
				return err
			}

		case Symbol:
			if elem.quoted {
				cp := DeepCopy(elem)
				cp.quoted = false
				ctx.push(cp)
				continue
			}
			if err := ctx.evalSymbol(elem); err != nil {
				return err
			}

		default:
			Retain(elem)
			ctx.push(elem)
		}
	}
	return nil
}

// captureLocals implements tuple-capture: pop len(t.Elems()) values off the
// stack and assign them, in left-to-right stack order, to the frame's local
// slots named by each tuple symbol's single byte.
func (ctx *Context) captureLocals(t *Value) error {
	k := len(t.elems)
	if len(ctx.Stack) < k {
		missing := t.elems[len(ctx.Stack)]
		return ctx.fail(string(missing.text), "Out of stack while capturing local")
	}
	base := len(ctx.Stack) - k
	captured := ctx.Stack[base:]
	ctx.Stack = ctx.Stack[:base]

	frame := ctx.frame
	for i, sym := range t.elems {
		idx := sym.text[0]
		Release(frame.locals[idx])
		frame.locals[idx] = captured[i]
	}
	return nil
}

// evalSymbol dispatches an unquoted Symbol: a $-prefixed name reads a
// local, otherwise the name is looked up as a procedure and either called
// directly (native) or run in a fresh Frame (body).
func (ctx *Context) evalSymbol(sym *Value) error {
	name := string(sym.text)
	if len(name) >= 2 && name[0] == '$' {
		idx := name[1]
		local := ctx.frame.locals[idx]
		if local == nil {
			return ctx.fail(name, "Unbound local variable")
		}
		Retain(local)
		ctx.push(local)
		return nil
	}

	proc := ctx.procs[name]
	if proc == nil {
		return ctx.fail(name, "Symbol not bound to procedure")
	}

	if proc.Native != nil {
		prev := ctx.frame.proc
		ctx.frame.proc = proc
		ctx.logf(".", "call %s", name)
		err := proc.Native(ctx)
		ctx.frame.proc = prev
		return err
	}

	ctx.depth++
	if ctx.maxDepth > 0 && ctx.depth > ctx.maxDepth {
		ctx.depth--
		return ctx.fail(name, "Call stack depth exceeded")
	}
	prevFrame := ctx.frame
	ctx.frame = &Frame{previous: prevFrame, proc: proc}
	ctx.logf(">", "enter %s", name)
	err := ctx.Eval(proc.Body)
	ctx.logf("<", "leave %s", name)
	releaseFrame(ctx.frame)
	ctx.frame = prevFrame
	ctx.depth--
	return err
}

// releaseFrame releases every local slot a frame was holding, in index
// order, matching the release-children-before-parent discipline values
// follow.
func releaseFrame(f *Frame) {
	for i := range f.locals {
		Release(f.locals[i])
		f.locals[i] = nil
	}
}
