package extractcmd

import "testing"

func TestExtractDirectoryCommandType(t *testing.T) {
	cmd := ExtractDirectoryCommand{Directory: "."}
	if got := cmd.Type(); got != "questionbank.extractor.extract_directory" {
		t.Fatalf("unexpected message type %q", got)
	}
}

func TestExtractDirectoryCommandValidate(t *testing.T) {
	valid := ExtractDirectoryCommand{Directory: "./exercises"}
	if err := valid.Validate(); err != nil {
		t.Fatalf("expected valid command, got %v", err)
	}

	missing := ExtractDirectoryCommand{}
	if err := missing.Validate(); err == nil {
		t.Fatal("expected error for missing directory")
	}

	blank := ExtractDirectoryCommand{Directory: "   "}
	if err := blank.Validate(); err == nil {
		t.Fatal("expected error for blank directory")
	}
}
