package notification

import "testing"

func TestDelinquencyMessage(t *testing.T) {
	got := DelinquencyMessage("abc", 1, 1079.178082191781)
	want := "Loan #abc is 1 days overdue. Outstanding amount: $1079.18"
	if got != want {
		t.Fatalf("message = %q, want %q", got, want)
	}

	got = DelinquencyMessage("abc", 12, -5)
	want = "Loan #abc is 12 days overdue. Outstanding amount: $-5.00"
	if got != want {
		t.Fatalf("message = %q, want %q", got, want)
	}
}
