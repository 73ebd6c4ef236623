package javatype

import "testing"

func TestJavaTypeForUnsigned(t *testing.T) {
	tests := []struct {
		mode  UnsignedNumericsMode
		width int
		want  string
	}{
		{IgnoreSign, 8, "byte"},
		{IgnoreSign, 16, "char"},
		{IgnoreSign, 32, "int"},
		{IgnoreSign, 64, "long"},
		{WrapUnsignedGuava, 8, "com.google.common.primitives.UnsignedInteger"},
		{WrapUnsignedGuava, 16, "char"},
		{WrapUnsignedGuava, 32, "com.google.common.primitives.UnsignedInteger"},
		{WrapUnsignedGuava, 64, "com.google.common.primitives.UnsignedLong"},
	}
	for _, tt := range tests {
		got, err := tt.mode.JavaTypeForUnsigned(tt.width)
		if err != nil {
			t.Fatalf("%s/UInt%d: error = %v", tt.mode, tt.width, err)
		}
		if got.String() != tt.want {
			t.Fatalf("%s/UInt%d = %s, want %s", tt.mode, tt.width, got, tt.want)
		}
	}
}

func TestJavaTypeForUnsigned_Errors(t *testing.T) {
	if _, err := IgnoreSign.JavaTypeForUnsigned(128); err == nil {
		t.Fatal("expected error for unsupported width")
	}
	if _, err := UnsignedNumericsMode(7).JavaTypeForUnsigned(32); err == nil {
		t.Fatal("expected error for unknown mode")
	}
}

func TestUnsignedNumericsMode_String(t *testing.T) {
	if IgnoreSign.String() != "ignoreSign" || WrapUnsignedGuava.String() != "wrapUnsignedGuava" {
		t.Fatalf("unexpected names: %s, %s", IgnoreSign, WrapUnsignedGuava)
	}
}
