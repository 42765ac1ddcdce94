package types

import (
	"testing"

	"cxxc/internal/token"
)

type fakeHierarchy struct{ bases map[string][]string }

func (h fakeHierarchy) IsDerivedFrom(source, target string) bool {
	if source == target {
		return true
	}
	for _, b := range h.bases[source] {
		if h.IsDerivedFrom(b, target) {
			return true
		}
	}
	return false
}

func TestRankOrder(t *testing.T) {
	if Rank(Bool) >= Rank(Char) {
		t.Error("bool must rank below char")
	}
	if Rank(Double) <= Rank(Float) {
		t.Error("double must rank above float")
	}
	if Rank(UserDefined{Name: "Foo"}) != -1 {
		t.Error("a non-numeric type must rank -1")
	}
}

func TestWiderPrefersHigherRank(t *testing.T) {
	if got := Wider(Int, Double); !Equal(got, Double) {
		t.Errorf("Wider(int, double) = %v, want double", got)
	}
	if got := Wider(Int, Int); !Equal(got, Int) {
		t.Errorf("Wider(int, int) = %v, want int", got)
	}
}

func TestEqual(t *testing.T) {
	if !Equal(Int, Primitive{Name: "int"}) {
		t.Error("int should equal int")
	}
	if Equal(Int, Long) {
		t.Error("int should not equal long")
	}
	if !Equal(Pointer{Elem: Int}, Pointer{Elem: Int}) {
		t.Error("Pointer{int} should equal Pointer{int}")
	}
	if Equal(Pointer{Elem: Int}, Pointer{Elem: Double}) {
		t.Error("Pointer{int} should not equal Pointer{double}")
	}
}

func TestCompatibleNumericWidening(t *testing.T) {
	if !Compatible(Int, Double, nil) {
		t.Error("int should be compatible with double")
	}
	if !Compatible(Unknown{}, Int, nil) {
		t.Error("Unknown must be universally compatible")
	}
	if !Compatible(Int, Unknown{}, nil) {
		t.Error("Unknown target must accept anything")
	}
}

func TestCompatibleClassHierarchy(t *testing.T) {
	h := fakeHierarchy{bases: map[string][]string{"Derived": {"Base"}}}
	if !Compatible(UserDefined{Name: "Derived"}, UserDefined{Name: "Base"}, h) {
		t.Error("Derived should be compatible with Base")
	}
	if Compatible(UserDefined{Name: "Base"}, UserDefined{Name: "Derived"}, h) {
		t.Error("Base should not be compatible with Derived")
	}
}

func TestCompatibleNullptrToPointer(t *testing.T) {
	if !Compatible(NullptrT{}, Pointer{Elem: Int}, nil) {
		t.Error("nullptr_t should be compatible with any pointer type")
	}
	if Compatible(Pointer{Elem: Int}, NullptrT{}, nil) {
		t.Error("a pointer should not be compatible with nullptr_t")
	}
}

func TestBinaryOpResultArithmetic(t *testing.T) {
	result, ok := BinaryOpResult(token.PLUS, Int, Double, nil)
	if !ok || !Equal(result, Double) {
		t.Fatalf("int + double = %v, %v; want double, true", result, ok)
	}
	if _, ok := BinaryOpResult(token.PLUS, UserDefined{Name: "Foo"}, Int, nil); ok {
		t.Error("class + int should not be a valid arithmetic operation")
	}
}

func TestBinaryOpResultComparisonProducesBool(t *testing.T) {
	result, ok := BinaryOpResult(token.LT, Int, Int, nil)
	if !ok || !Equal(result, Bool) {
		t.Fatalf("int < int = %v, %v; want bool, true", result, ok)
	}
}

func TestBinaryOpResultBitwiseRequiresIntegral(t *testing.T) {
	if _, ok := BinaryOpResult(token.AMP, Double, Int, nil); ok {
		t.Error("double & int should be rejected (double is not integral)")
	}
	result, ok := BinaryOpResult(token.SHL, Char, Int, nil)
	if !ok || !Equal(result, Int) {
		t.Fatalf("char << int = %v, %v; want int, true", result, ok)
	}
}

func TestUnaryOpResult(t *testing.T) {
	if result, ok := UnaryOpResult(token.STAR, Pointer{Elem: Int}); !ok || !Equal(result, Int) {
		t.Fatalf("*int* = %v, %v; want int, true", result, ok)
	}
	if result, ok := UnaryOpResult(token.AMP, Int); !ok || !Equal(result, Pointer{Elem: Int}) {
		t.Fatalf("&int = %v, %v; want int*, true", result, ok)
	}
	if _, ok := UnaryOpResult(token.STAR, Int); ok {
		t.Error("dereferencing a non-pointer should fail")
	}
}

func TestCastValid(t *testing.T) {
	if !CastValid(StaticCast, Int, Double) {
		t.Error("static_cast<double>(int) should be valid")
	}
	if CastValid(StaticCast, UserDefined{Name: "Foo"}, Int) {
		t.Error("static_cast from a class to int should be rejected")
	}
	if !CastValid(DynamicCast, Pointer{Elem: UserDefined{Name: "Base"}}, Pointer{Elem: UserDefined{Name: "Derived"}}) {
		t.Error("dynamic_cast between class pointers should be valid")
	}
	if CastValid(DynamicCast, Pointer{Elem: Int}, Pointer{Elem: Double}) {
		t.Error("dynamic_cast between non-class pointers should be rejected")
	}
}

func TestIndexResult(t *testing.T) {
	result, ok := IndexResult(Array{Elem: Int, N: 10}, Int)
	if !ok || !Equal(result, Int) {
		t.Fatalf("int[10][int] = %v, %v; want int, true", result, ok)
	}
	if _, ok := IndexResult(Array{Elem: Int, N: 10}, Double); ok {
		t.Error("indexing with a non-integral subscript should be rejected")
	}
}
