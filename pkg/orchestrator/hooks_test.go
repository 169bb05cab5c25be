package orchestrator

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/sbopak/sbopak/pkg/artifact"
	"github.com/sbopak/sbopak/pkg/hook"
	"github.com/sbopak/sbopak/pkg/pkginfo"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

// recordingHookExecutor notes which hook files ran and with what operation.
type recordingHookExecutor struct {
	calls []string
}

func (r *recordingHookExecutor) ExecuteHook(hookPath string, hctx *hook.Context) error {
	r.calls = append(r.calls, filepath.Base(hookPath)+":"+hctx.Operation)
	return nil
}

func hookManagerFixture(t *testing.T, phases ...string) (*hook.Manager, *recordingHookExecutor) {
	t.Helper()
	dir := t.TempDir()
	for _, phase := range phases {
		require.NoError(t, os.WriteFile(filepath.Join(dir, phase+".tengo"), []byte("// hook"), 0o644))
	}
	rec := &recordingHookExecutor{}
	return hook.NewManagerWithExecutor(dir, rec), rec
}

func TestInstallRunsUserHooks(t *testing.T) {
	f := newFixture(t)
	manager, rec := hookManagerFixture(t, hook.PreBuild, hook.PostInstall)
	f.orch.UserHooks = manager

	root := testPkg("system/htop", "3.2.2")
	f.db.EXPECT().Installed().Return(map[string]string{}, nil)
	f.loader.EXPECT().Load("htop", false).Return(root, nil)
	f.resolver.EXPECT().BuildQueue(root).Return([]*pkginfo.Package{root}, nil)
	f.stager.EXPECT().Stage(gomock.Any(), root).Return("/tmp/sbopak/htop", nil)
	f.builder.EXPECT().Build(gomock.Any(), root, "/tmp/sbopak/htop").Return("/out/htop.tgz", nil)
	f.installer.EXPECT().Install(gomock.Any(), "/out/htop.tgz").Return(nil)

	require.NoError(t, f.orch.Install(context.Background(), []string{"htop"}, InstallOptions{}))
	assert.Equal(t, []string{"pre-build.tengo:build", "post-install.tengo:install"}, rec.calls)
}

func TestBuildRunsOnlyPreBuildHook(t *testing.T) {
	f := newFixture(t)
	manager, rec := hookManagerFixture(t, hook.PreBuild, hook.PostInstall)
	f.orch.UserHooks = manager

	pkg := testPkg("system/htop", "3.2.2")
	f.loader.EXPECT().Load("htop", false).Return(pkg, nil)
	f.stager.EXPECT().Stage(gomock.Any(), pkg).Return("/tmp/sbopak/htop", nil)
	f.builder.EXPECT().Build(gomock.Any(), pkg, "/tmp/sbopak/htop").Return("/out/htop.tgz", nil)

	_, err := f.orch.Build(context.Background(), []string{"htop"}, BuildOptions{})
	require.NoError(t, err)
	assert.Equal(t, []string{"pre-build.tengo:build"}, rec.calls)
}

func TestRemoveRunsPostRemoveHook(t *testing.T) {
	f := newFixture(t)
	manager, rec := hookManagerFixture(t, hook.PostRemove)
	f.orch.UserHooks = manager

	f.db.EXPECT().Entries().Return([]artifact.Entry{
		{
			FullName: "htop-3.2.2-x86_64-1_SBo",
			Ref:      artifact.Ref{Identifier: "system/htop", Name: "htop", Version: "3.2.2"},
		},
	}, nil)
	f.installer.EXPECT().Remove(gomock.Any(), "htop-3.2.2-x86_64-1_SBo").Return(nil)

	require.NoError(t, f.orch.Remove(context.Background(), []string{"htop"}))
	assert.Equal(t, []string{"post-remove.tengo:remove"}, rec.calls)
}
