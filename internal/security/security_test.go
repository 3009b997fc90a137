package security

import "testing"

func TestCheckAllowedBlocks(t *testing.T) {
	cases := []string{
		"rm -rf /",
		"sudo rm -rf /var",
		"mkfs.ext4 /dev/sda1",
		"dd if=/dev/zero of=/dev/sda",
		":(){ :|:& };:",
		"wipefs -a /dev/sdb",
		"git push origin main --force",
		"",
	}
	for _, c := range cases {
		if err := CheckAllowed(c); err == nil {
			t.Fatalf("CheckAllowed(%q): expected block", c)
		}
	}
}

func TestCheckAllowedPermits(t *testing.T) {
	cases := []string{
		"go test ./...",
		"git status",
		"rm build/output.tar.gz",
		"git push origin v1.2.3",
	}
	for _, c := range cases {
		if err := CheckAllowed(c); err != nil {
			t.Fatalf("CheckAllowed(%q): %v", c, err)
		}
	}
}
