package mecabrc_test

import (
	"os"
	"path/filepath"
	"testing"

	"golang.org/x/exp/slices"

	"yomu.dev/go/morph/mecabrc"
)

func writeRC(t *testing.T, contents string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "mecabrc")
	if err := os.WriteFile(path, []byte(contents), 0o644); err != nil {
		t.Fatalf("writing fixture mecabrc: %v", err)
	}
	return path
}

func TestParse(t *testing.T) {
	path := writeRC(t, "; comment line\ndicdir = /usr/lib/mecab/dic/ipadic\noutput-format-type = wakati\n\n")

	rc, err := mecabrc.Parse(path)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if rc["dicdir"] != "/usr/lib/mecab/dic/ipadic" {
		t.Errorf("dicdir = %q, want /usr/lib/mecab/dic/ipadic", rc["dicdir"])
	}
	if rc["output-format-type"] != "wakati" {
		t.Errorf("output-format-type = %q, want wakati", rc["output-format-type"])
	}

	keys := mecabrc.Keys(rc)
	slices.Sort(keys)
	want := []string{"dicdir", "output-format-type"}
	if !slices.Equal(keys, want) {
		t.Errorf("Keys = %v, want %v", keys, want)
	}
}

func TestFindHonorsMECABRCEnv(t *testing.T) {
	path := writeRC(t, "dicdir = /opt/ipadic\n")
	t.Setenv("MECABRC", path)

	found, err := mecabrc.Find()
	if err != nil {
		t.Fatalf("Find: %v", err)
	}
	if found != path {
		t.Errorf("Find() = %q, want %q", found, path)
	}
}

func TestFindReturnsErrConfigMissing(t *testing.T) {
	t.Setenv("MECABRC", filepath.Join(t.TempDir(), "does-not-exist"))

	_, err := mecabrc.Find()
	if err != mecabrc.ErrConfigMissing {
		t.Errorf("Find() err = %v, want ErrConfigMissing", err)
	}
}

func TestDicDirPrefersEnvOverride(t *testing.T) {
	t.Setenv("MECAB_DICDIR", "/env/override")
	rc := map[string]string{"dicdir": "/from/rc"}

	d, err := mecabrc.DicDir(rc)
	if err != nil {
		t.Fatalf("DicDir: %v", err)
	}
	if d != "/env/override" {
		t.Errorf("DicDir = %q, want env override", d)
	}
}

func TestDicDirFallsBackToRC(t *testing.T) {
	rc := map[string]string{"dicdir": "/from/rc"}
	d, err := mecabrc.DicDir(rc)
	if err != nil {
		t.Fatalf("DicDir: %v", err)
	}
	if d != "/from/rc" {
		t.Errorf("DicDir = %q, want /from/rc", d)
	}
}

func TestDicDirMissing(t *testing.T) {
	_, err := mecabrc.DicDir(map[string]string{})
	if err != mecabrc.ErrNoDicDir {
		t.Errorf("DicDir err = %v, want ErrNoDicDir", err)
	}
}

func TestUserDicOptional(t *testing.T) {
	if _, ok := mecabrc.UserDic(map[string]string{}); ok {
		t.Errorf("UserDic found one when none was configured")
	}
	d, ok := mecabrc.UserDic(map[string]string{"userdic": "/opt/user.dic"})
	if !ok || d != "/opt/user.dic" {
		t.Errorf("UserDic = (%q, %v), want (/opt/user.dic, true)", d, ok)
	}
}
