package classify

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/backmassage/segmaster/internal/probe"
)

type fakeRunner struct {
	stdout string
	err    error
	calls  int
}

func (f *fakeRunner) Run(_ context.Context, _ string, _ ...string) (string, string, error) {
	f.calls++
	return f.stdout, "", f.err
}

func touch(t *testing.T, dir, name string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte("x"), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestDetect_Missing(t *testing.T) {
	run := &fakeRunner{}
	_, err := Detect(context.Background(), probe.New(run), filepath.Join(t.TempDir(), "nope.mp4"))
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("err = %v, want ErrNotFound", err)
	}
	if run.calls != 0 {
		t.Errorf("probe invoked %d times for a missing file", run.calls)
	}
}

func TestDetect_Playlist(t *testing.T) {
	path := touch(t, t.TempDir(), "stream.m3u8")
	kind, err := Detect(context.Background(), probe.New(&fakeRunner{}), path)
	if err != nil {
		t.Fatal(err)
	}
	if kind != KindPlaylist {
		t.Errorf("kind = %v, want KindPlaylist", kind)
	}
}

func TestDetect_MediaExtension(t *testing.T) {
	for _, name := range []string{"a.mp4", "b.MOV", "c.mkv", "d.avi", "e.ts"} {
		path := touch(t, t.TempDir(), name)
		run := &fakeRunner{}
		kind, err := Detect(context.Background(), probe.New(run), path)
		if err != nil {
			t.Fatalf("%s: %v", name, err)
		}
		if kind != KindMedia {
			t.Errorf("%s: kind = %v, want KindMedia", name, kind)
		}
		if run.calls != 0 {
			t.Errorf("%s: probe invoked for a known extension", name)
		}
	}
}

func TestDetect_UnknownExtensionProbed(t *testing.T) {
	path := touch(t, t.TempDir(), "clip.webm")
	run := &fakeRunner{stdout: "format_name=matroska,webm\n"}
	kind, err := Detect(context.Background(), probe.New(run), path)
	if err != nil {
		t.Fatal(err)
	}
	if kind != KindMedia {
		t.Errorf("kind = %v, want KindMedia", kind)
	}
	if run.calls != 1 {
		t.Errorf("probe invoked %d times, want 1", run.calls)
	}
}

func TestDetect_ProbeFailure(t *testing.T) {
	path := touch(t, t.TempDir(), "blob.bin")
	run := &fakeRunner{err: errors.New("exit status 1")}
	_, err := Detect(context.Background(), probe.New(run), path)
	if !errors.Is(err, ErrUnknownFormat) {
		t.Fatalf("err = %v, want ErrUnknownFormat", err)
	}
}
