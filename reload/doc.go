// Package reload keeps a view current by re-loading its source.
//
// A Reloader runs a source.Source and hands the resulting store to a Target
// (usually a *tabview.View). Reloads can be triggered manually, on a cron
// schedule, or when watched files change.
//
//	r := reload.New(source.NewBlob(blobstore.NewLocalStore(dir), "users.json"), view)
//	defer r.Close()
//
//	_ = r.Watch(filepath.Join(dir, "users.json"))
//	_ = r.Schedule("@every 5m")
package reload
