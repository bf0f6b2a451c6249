package codegen_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/rico8ls/rico8c/codegen"
	"github.com/rico8ls/rico8c/parser"
)

func generate(t *testing.T, src string) string {
	t.Helper()
	prog, err := parser.Parse(src)
	require.NoError(t, err)
	return codegen.Generate(prog)
}

func TestGenerateSimpleProgram(t *testing.T) {
	out := generate(t, `
		fn main() {
			let x = 5;
			print(x);
		}
	`)
	require.Contains(t, out, "function main()")
	require.Contains(t, out, "local x = 5")
	require.Contains(t, out, "print(x)")
}

func TestGenerateStructAndConstructor(t *testing.T) {
	out := generate(t, `
		struct Point { x: i32, y: i32 }
		impl Point {
			fn new(x: i32, y: i32) -> Point {
				Point { x: x, y: y }
			}
		}
	`)
	require.Contains(t, out, "Point = {}")
	require.Contains(t, out, "function Point:new(x, y)")
	require.Contains(t, out, "setmetatable(obj, {__index = Point})")
}

func TestGenerateEnumUnitVariants(t *testing.T) {
	out := generate(t, `
		enum State {
			Idle,
			Running,
		}
	`)
	require.Contains(t, out, "Idle = {")
	require.Contains(t, out, `tag = "Idle"`)
	require.Contains(t, out, "Running = {")
	require.Contains(t, out, `tag = "Running"`)
}

func TestGenerateEnumTupleVariantConstructor(t *testing.T) {
	out := generate(t, `
		enum Shape {
			Circle(i32),
			Idle,
		}
	`)
	require.Contains(t, out, "function Shape.Circle(a0)")
	require.Contains(t, out, `tag = "Circle", a0 = a0`)
}

func TestGenerateMatchOnEnum(t *testing.T) {
	out := generate(t, `
		fn describe(state: State) {
			match state {
				State::Idle => print(0),
				_ => print(1),
			}
		}
	`)
	require.Contains(t, out, "local __match = state")
	require.Contains(t, out, `__match.tag == "Idle"`)
}

func TestGenerateBitwiseAndBecomesBandCall(t *testing.T) {
	out := generate(t, `
		fn main() {
			let a = 255 & 15;
		}
	`)
	require.Contains(t, out, "band(255, 15)")
}

func TestGenerateRangeForLoop(t *testing.T) {
	out := generate(t, `
		fn main() {
			for i in 0..5 {
				print(i);
			}
		}
	`)
	require.Contains(t, out, "for i=0,5 do")
}

func TestGenerateEnumPathCallBecomesColonCall(t *testing.T) {
	out := generate(t, `
		fn main() {
			let p = Point::new(1, 2);
		}
	`)
	require.Contains(t, out, "Point:new(1, 2)")
}

func TestGenerateStringConcatHeuristic(t *testing.T) {
	out := generate(t, `
		fn main() {
			let name: String = "a";
			let greeting = name + "!";
		}
	`)
	require.Contains(t, out, `name .. "!"`)
}

func TestGenerateTraitDefaultMethodInlinedIntoImpl(t *testing.T) {
	out := generate(t, `
		trait Greet {
			fn hello(&self) {
				print(1);
			}
		}
		struct Point { x: i32 }
		impl Greet for Point {}
	`)
	require.Contains(t, out, "-- trait Greet")
	require.Contains(t, out, "-- impl Greet for Point")
	require.Contains(t, out, "function Point:hello()")
}

func TestGenerateImplicitTailReturn(t *testing.T) {
	out := generate(t, `
		fn double(x: i32) -> i32 {
			x * 2
		}
	`)
	require.Contains(t, out, "return (x * 2)")
}

func TestGenerateBuiltinManifestListsCalledBuiltins(t *testing.T) {
	out := generate(t, `
		fn main() {
			cls();
			print("hi");
			let x = rnd(10);
		}
	`)
	require.Contains(t, out, "-- builtins used: print, cls, rnd")
}

func TestGenerateBuiltinManifestOmittedWhenNoBuiltinsCalled(t *testing.T) {
	out := generate(t, `
		fn helper() {}
		fn main() {
			helper();
		}
	`)
	require.NotContains(t, out, "builtins used")
}

func TestGenerateIfConditionIsParenthesized(t *testing.T) {
	out := generate(t, `
		fn test() {
			if x > 0 {
				print("positive");
			} else {
				print("negative");
			}
		}
	`)
	require.Contains(t, out, "if (x > 0)")
}

func TestGenerateWhileConditionIsParenthesized(t *testing.T) {
	out := generate(t, `
		fn test() {
			while x < 10 {
				x = x + 1;
			}
		}
	`)
	require.Contains(t, out, "while (x < 10)")
}

func TestGenerateStringConcatInReturnIsParenthesized(t *testing.T) {
	out := generate(t, `
		fn greet(name: String) -> String {
			return "Hello, " + name;
		}
	`)
	require.Contains(t, out, `("Hello, " .. name)`)
}
