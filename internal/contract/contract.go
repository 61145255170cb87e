// Package contract preflights the cross-language data-contract types the
// host application shares with its frontend. The schema compiler that
// produces them is an external collaborator; bindweld never transforms its
// output and only checks that the compiled descriptor set exists and links
// before generation runs.
package contract

import (
	"fmt"
	"os"

	"github.com/jhump/protoreflect/desc"
	"google.golang.org/protobuf/proto"
	"google.golang.org/protobuf/types/descriptorpb"
)

// Verify loads the compiled FileDescriptorSet at path and links it. Any
// failure — missing file, corrupt encoding, unresolvable references — is
// fatal to the build.
func Verify(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("data contract: %w", err)
	}

	var fds descriptorpb.FileDescriptorSet
	if err := proto.Unmarshal(data, &fds); err != nil {
		return fmt.Errorf("data contract %s: not a valid descriptor set: %w", path, err)
	}
	if len(fds.File) == 0 {
		return fmt.Errorf("data contract %s: descriptor set is empty", path)
	}

	if _, err := desc.CreateFileDescriptorsFromSet(&fds); err != nil {
		return fmt.Errorf("data contract %s: %w", path, err)
	}
	return nil
}
