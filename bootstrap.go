package aocla

// bootstrapSource holds higher-order and convenience words defined in the
// language itself rather than natively, exactly as listed in §4.5. tail is
// carried verbatim even though it references foreach, which neither this
// package nor the source it's modeled on ever defines -- calling tail fails
// at runtime with "Symbol not bound to procedure: 'foreach'" until a
// definition is supplied. See DESIGN.md.
var bootstrapSource = []struct{ name, body string }{
	{"dup", "[(x) $x $x]"},
	{"swap", "[(x y) $y $x]"},
	{"drop", "[(_)]"},
	{"map", `[(l f)   $l # (s)   0 (i)   []
          [$i $s <] [
           $l $i @   $f up-eval
           <-
           $i 1 + (i)
          ] while]`},
	{"each", `[(l f) $l # (s) 0 (i)
          [$i $s <] [
           $l $i @ $f up-eval
           $i 1 + (i)
          ] while]`},
	{"head", "[0 @]"},
	{"tail", `[#t (d) [] (n) [
          [$d] [#f (d) drop] [$n swap <- (n)] if-else
         ] foreach $n]`},
}

// installBootstrap parses and defines every bootstrapSource entry. A parse
// failure here is a programming error in this package, not a runtime
// condition a caller can recover from, so it panics -- mirroring the
// original interpreter construction, which aborts the same way if one of
// its string procedures fails to parse.
func installBootstrap(ctx *Context) {
	for _, w := range bootstrapSource {
		body, err := Parse([]byte(w.body))
		if err != nil {
			panic("aocla: bootstrap word " + w.name + " failed to parse: " + err.Error())
		}
		ctx.Define(w.name, body)
	}
}
