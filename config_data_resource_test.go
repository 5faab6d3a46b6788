package configdata

import (
	"os"
	"path/filepath"
	"sync"
	"testing"

	"github.com/jumppad-labs/configdata/errors"
	"github.com/jumppad-labs/configdata/resource"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testReference() *Reference {
	return NewReference(ParseLocation("classpath:/config/"), "classpath:/config/", "classpath:/config/application", "", "hcl")
}

func setupSharedFile(t *testing.T) (*resource.ClassPathResource, *resource.FileURLResource) {
	root := t.TempDir()
	err := os.WriteFile(filepath.Join(root, "application.hcl"), []byte(`name = "shared"`), 0644)
	require.NoError(t, err)

	cpr := resource.NewClassPath(root).Resource("application.hcl")

	u, err := cpr.URL()
	require.NoError(t, err)

	fur, err := resource.NewFileURLResource(u)
	require.NoError(t, err)

	return cpr, fur
}

func TestCreateWhenReferenceIsNilReturnsError(t *testing.T) {
	_, err := NewStandardResource(nil, resource.NewClassPathResource("config/"))

	require.ErrorIs(t, err, errors.ErrInvalidArgument)
	require.EqualError(t, err, "'reference' must not be null")
}

func TestCreateWhenResourceIsNilReturnsError(t *testing.T) {
	_, err := NewStandardResource(testReference(), nil)

	require.ErrorIs(t, err, errors.ErrInvalidArgument)
	require.EqualError(t, err, "'resource' must not be null")
}

func TestCreateWhenResourceIsTypedNilReturnsError(t *testing.T) {
	var res *resource.FileSystemResource

	_, err := NewStandardResource(testReference(), res)

	require.EqualError(t, err, "'resource' must not be null")
}

func TestCreateStoresReferenceAndResource(t *testing.T) {
	ref := testReference()
	res := resource.NewClassPathResource("config/")

	sr, err := NewStandardResource(ref, res)
	require.NoError(t, err)

	require.Same(t, ref, sr.Reference())
	require.Same(t, res, sr.Resource())
	require.False(t, sr.EmptyDirectory())
	require.False(t, sr.Optional())
	require.Equal(t, "", sr.Profile())
}

func TestEqualsWhenResourceIsTheSameReturnsTrue(t *testing.T) {
	res := resource.NewClassPathResource("config/")

	location, err := NewStandardResource(testReference(), res)
	require.NoError(t, err)

	other, err := NewStandardResource(testReference(), res)
	require.NoError(t, err)

	require.True(t, location.Equal(other))
	require.Equal(t, location.Hash(), other.Hash())
}

func TestEqualsWhenResourceIsDifferentReturnsFalse(t *testing.T) {
	ref := testReference()

	location, err := NewStandardResource(ref, resource.NewClassPathResource("config/"))
	require.NoError(t, err)

	other, err := NewStandardResource(ref, resource.NewClassPathResource("configdata/"))
	require.NoError(t, err)

	require.False(t, location.Equal(other))
}

func TestEqualsIgnoresReference(t *testing.T) {
	res := resource.NewClassPathResource("config/")
	otherRef := NewReference(ParseLocation("optional:file:./"), "file:./", "file:./application", "dev", "yaml")

	location, err := NewStandardResource(testReference(), res)
	require.NoError(t, err)

	other, err := NewStandardResource(otherRef, res)
	require.NoError(t, err)

	require.True(t, location.Equal(other))
	require.Equal(t, location.Hash(), other.Hash())
}

func TestEqualsAndHashWhenSameUnderlyingResource(t *testing.T) {
	cpr, fur := setupSharedFile(t)

	classPathResource, err := NewStandardResource(testReference(), cpr)
	require.NoError(t, err)

	fileURLResource, err := NewStandardResource(testReference(), fur)
	require.NoError(t, err)

	require.Equal(t, classPathResource.Hash(), fileURLResource.Hash())
	require.True(t, classPathResource.Equal(fileURLResource))
	require.True(t, fileURLResource.Equal(classPathResource))
}

func TestEqualsReturnsFalseForNil(t *testing.T) {
	sr, err := NewStandardResource(testReference(), resource.NewClassPathResource("config/"))
	require.NoError(t, err)

	var typed *StandardResource
	require.False(t, sr.Equal(nil))
	require.False(t, sr.Equal(typed))
}

func TestEmptyDirectoryResourceIsEqualToDirectoryResource(t *testing.T) {
	res := resource.NewClassPathResource("config/")

	empty, err := NewEmptyDirectoryResource(testReference(), res)
	require.NoError(t, err)
	require.True(t, empty.EmptyDirectory())
	require.Equal(t, "class path resource [config/] (empty directory)", empty.String())

	sr, err := NewStandardResource(testReference(), res)
	require.NoError(t, err)
	require.True(t, empty.Equal(sr))
}

func TestStandardResourceIsSafeForConcurrentUse(t *testing.T) {
	cpr, fur := setupSharedFile(t)

	a, _ := NewStandardResource(testReference(), cpr)
	b, _ := NewStandardResource(testReference(), fur)

	wg := sync.WaitGroup{}
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			assert.True(t, a.Equal(b))
			assert.Equal(t, a.Hash(), b.Hash())
		}()
	}

	wg.Wait()
}

func TestDedupeRemovesEqualResourcesAndKeepsOrder(t *testing.T) {
	cpr, fur := setupSharedFile(t)

	first, _ := NewStandardResource(testReference(), resource.NewClassPathResource("config/"))
	second, _ := NewStandardResource(testReference(), cpr)
	duplicate, _ := NewStandardResource(testReference(), fur)
	third, _ := NewStandardResource(testReference(), resource.NewClassPathResource("configdata/"))

	out := Dedupe([]*StandardResource{first, second, nil, duplicate, third, first})

	require.Len(t, out, 3)
	require.Same(t, first, out[0])
	require.Same(t, second, out[1])
	require.Same(t, third, out[2])
}
