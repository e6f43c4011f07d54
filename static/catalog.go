package static

import "github.com/fwojciec/farmdocs"

// catalog builds the curated document table. Entries are evaluated in
// order; the last entry is a catch-all whose matcher always fires.
func catalog() []entry {
	return []entry{
		{
			match: func(q string) bool { return containsAny(q, "submit", "submission") },
			doc: curated(farmdocs.DocTypeUserManual, "job-submission", "Job Submission", "Jobs",
				"To submit a job, open the submission dialog from the Monitor or from the "+
					"integrated submitter inside your content creation application. Choose the pool, "+
					"group, priority and frame range for the job, then press Submit. Submitted jobs "+
					"enter the queue and are picked up by idle workers that satisfy the job's pool "+
					"and group assignment.",
				"deadline.SubmitJob(jobInfoFile, pluginInfoFile)"),
		},
		{
			match: func(q string) bool { return containsAny(q, "worker", "slave", "pool", "group") },
			doc: curated(farmdocs.DocTypeUserManual, "workers-and-pools", "Workers and Pools", "Farm Management",
				"Workers are the machines that render tasks. Each worker is assigned to one or "+
					"more pools and groups, which control which jobs it may dequeue. A worker only "+
					"picks up tasks from jobs whose pool it belongs to, in pool order. Use groups to "+
					"partition workers by installed software or hardware capability.",
				""),
		},
		{
			match: func(q string) bool { return containsAny(q, "script", "python", "api", "repositoryutils") },
			doc: curated(farmdocs.DocTypeScriptingRef, "scripting-overview", "Scripting API Overview", "Scripting",
				"The scripting API exposes the repository to Python scripts. Use RepositoryUtils "+
					"to query, submit and modify jobs, and ClientUtils to issue commands from a "+
					"client script. Event plugins react to job and worker state changes; job scripts "+
					"run at defined points in a job lifecycle.",
				"jobs = RepositoryUtils.GetJobs(True)",
				"RepositoryUtils.ResubmitJob(job, frames, chunkSize)"),
		},
		{
			match: func(q string) bool { return containsAny(q, "plugin", "event") },
			doc: curated(farmdocs.DocTypeUserManual, "plugin-configuration", "Plugin Configuration", "Plugins",
				"Application plugins tell workers how to launch and drive a rendering "+
					"application. Each plugin has configurable executable paths and render "+
					"arguments, editable from the Monitor. Event plugins run in response to farm "+
					"events such as a job finishing or a worker stalling.",
				""),
		},
		{
			match: func(q string) bool { return true },
			doc: curated(farmdocs.DocTypeUserManual, "documentation-overview", "Documentation Overview", "Getting Started",
				"The documentation covers three areas. The user manual explains day to day farm "+
					"operation: submitting jobs, managing workers, pools and limits, and monitoring "+
					"the queue. The scripting reference documents the command and event scripting "+
					"interfaces. The Python reference documents the standalone Python API module by "+
					"module.",
				""),
		},
	}
}

// curated assembles one catalog document with a stable ID and tagged
// keywords, mirroring how indexed documents are built.
func curated(docType farmdocs.DocType, slug, title, section, content string, examples ...string) *farmdocs.Document {
	var code []string
	for _, example := range examples {
		if example != "" {
			code = append(code, example)
		}
	}
	return &farmdocs.Document{
		ID:           farmdocs.DocumentID(docType, "curated/"+slug),
		DocType:      docType,
		Title:        title,
		Content:      content,
		Section:      section,
		URL:          "curated/" + slug,
		Keywords:     farmdocs.Keywords(title, content),
		CodeExamples: code,
	}
}
