package configdata

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestResourceLocationAddsProfileAndExtension(t *testing.T) {
	ref := NewReference(ParseLocation("classpath:/config/"), "classpath:/config/", "classpath:/config/application", "dev", "hcl")

	require.Equal(t, "classpath:/config/application-dev.hcl", ref.ResourceLocation())
	require.Equal(t, "dev", ref.Profile())
	require.Equal(t, "hcl", ref.Extension())
	require.Equal(t, "classpath:/config/", ref.Directory())
	require.Equal(t, "classpath:/config/application", ref.Root())
}

func TestResourceLocationWithoutProfile(t *testing.T) {
	ref := NewReference(ParseLocation("file:./app.yaml"), "", "file:./app", "", "yaml")

	require.Equal(t, "file:./app.yaml", ref.ResourceLocation())
	require.Equal(t, "file:./app.yaml", ref.String())
}

func TestMandatoryDirectoryAndSkippable(t *testing.T) {
	dir := NewReference(ParseLocation("file:./config/"), "file:./config/", "file:./config/application", "", "hcl")
	require.True(t, dir.IsMandatoryDirectory())
	require.True(t, dir.IsSkippable())

	optDir := NewReference(ParseLocation("optional:file:./config/"), "file:./config/", "file:./config/application", "", "hcl")
	require.False(t, optDir.IsMandatoryDirectory())
	require.True(t, optDir.IsSkippable())

	file := NewReference(ParseLocation("file:./app.hcl"), "", "file:./app", "", "hcl")
	require.False(t, file.IsMandatoryDirectory())
	require.False(t, file.IsSkippable())

	profileFile := NewReference(ParseLocation("file:./app.hcl"), "", "file:./app", "dev", "hcl")
	require.True(t, profileFile.IsSkippable())
}

func TestReferenceStringIncludesResourceLocation(t *testing.T) {
	ref := NewReference(ParseLocation("optional:classpath:/config/"), "classpath:/config/", "classpath:/config/application", "", "hcl")

	require.Equal(t, "'optional:classpath:/config/' (classpath:/config/application.hcl)", ref.String())
}
