package webui

const indexHTML = `<!doctype html>
<html>
<head>
  <meta charset="utf-8" />
  <meta name="viewport" content="width=device-width, initial-scale=1" />
  <title>Kathakar Story Studio</title>
  <style>
    body { font-family: "Segoe UI", sans-serif; margin: 0; background: linear-gradient(145deg,#fdf6ec,#f3e7d3); color: #1f2937; }
    .wrap { max-width: 960px; margin: 0 auto; padding: 20px; }
    .panel { background: #fff; border-radius: 12px; box-shadow: 0 8px 30px rgba(120,53,15,.10); padding: 16px; margin-bottom: 16px; }
    label { display: block; margin-top: 10px; font-weight: 600; font-size: 14px; }
    input, select, textarea { width: 100%; box-sizing: border-box; padding: 8px; border: 1px solid #d6c3a1; border-radius: 8px; margin-top: 4px; }
    textarea { min-height: 90px; }
    .row { display: flex; gap: 12px; }
    .row > div { flex: 1; }
    button { margin-top: 14px; padding: 10px 18px; border: 0; border-radius: 8px; background: #9a3412; color: #fff; cursor: pointer; }
    button:hover { background: #c2410c; }
    #output, #translation { white-space: pre-wrap; border: 1px solid #d6c3a1; border-radius: 8px; padding: 12px; background: #fffaf3; min-height: 120px; margin-top: 10px; }
    #status { margin-left: 12px; color: #78350f; }
    #twists { display: grid; grid-template-columns: 1fr 1fr; gap: 4px; margin-top: 4px; font-weight: 400; font-size: 14px; }
  </style>
</head>
<body>
  <div class="wrap">
    <div class="panel">
      <h2>Kathakar Story Studio</h2>
      <label>Story description</label>
      <textarea id="description" placeholder="Describe the core idea, conflict, or setting..."></textarea>
      <label>Characters (comma separated)</label>
      <input id="characters" placeholder="Niraj, Kavya, Aaji" />
      <div class="row">
        <div><label>Genre</label><select id="genre"></select></div>
        <div><label>Writing style</label><select id="style"></select></div>
        <div><label>Literary inspiration</label><select id="inspiration"></select></div>
      </div>
      <div class="row">
        <div><label>Target length</label><select id="length"></select></div>
        <div><label>Chapters</label><select id="chapters"></select></div>
        <div><label>Ending mood</label><select id="ending"></select></div>
      </div>
      <label>Plot twists</label>
      <div id="twists"></div>
      <label>Custom twists (comma separated)</label>
      <input id="customTwists" />
      <div class="row">
        <div><label>Mode</label><select id="mode"><option>auto</option><option>single</option><option>chaptered</option></select></div>
        <div><label>Temperature</label><input id="temperature" type="number" step="0.05" min="0.2" max="1.2" value="0.75" /></div>
      </div>
      <button id="generate">Generate story</button><span id="status"></span>
      <div id="output"></div>
    </div>
    <div class="panel">
      <h3>Translate</h3>
      <div class="row">
        <div><label>Target language</label><select id="language"></select></div>
        <div><label>Temperature</label><input id="trTemperature" type="number" step="0.05" min="0.2" max="0.8" value="0.35" /></div>
      </div>
      <button id="translate">Translate story</button>
      <div id="translation"></div>
    </div>
  </div>
  <script>
    const el = (id) => document.getElementById(id);
    const fill = (id, values) => { el(id).innerHTML = values.map(v => '<option>' + v + '</option>').join(''); };
    const setStatus = (text) => { el('status').textContent = text; };

    async function loadOptions() {
      const opts = await (await fetch('/api/options')).json();
      fill('genre', opts.genres);
      fill('style', opts.styles);
      fill('inspiration', opts.inspirations);
      el('length').innerHTML = opts.length_presets.map(p => '<option value="' + p.words + '">' + p.label + '</option>').join('');
      el('length').selectedIndex = 1;
      fill('chapters', opts.chapters);
      el('chapters').selectedIndex = 2;
      fill('ending', opts.endings);
      fill('language', opts.languages);
      el('twists').innerHTML = opts.plot_twists.map(t => '<label><input type="checkbox" value="' + t + '" /> ' + t + '</label>').join('');
    }

    async function generate() {
      const twists = Array.from(el('twists').querySelectorAll('input:checked')).map(c => c.value);
      const custom = el('customTwists').value.split(',').map(s => s.trim()).filter(Boolean);
      setStatus('Calling Gemini...');
      const resp = await fetch('/api/generate', {
        method: 'POST',
        headers: { 'Content-Type': 'application/json' },
        body: JSON.stringify({
          story_description: el('description').value,
          characters: el('characters').value,
          genre: el('genre').value,
          writing_style: el('style').value,
          literature_inspiration: el('inspiration').value,
          word_length: parseInt(el('length').value, 10),
          chapters: parseInt(el('chapters').value, 10),
          plot_twists: twists.concat(custom),
          ending_type: el('ending').value,
          temperature: parseFloat(el('temperature').value),
          mode: el('mode').value
        })
      });
      const data = await resp.json();
      if (!resp.ok) { setStatus(data.error || 'Generation failed.'); return; }
      el('output').textContent = data.text;
      setStatus('Story ready!');
    }

    async function translate() {
      const text = el('output').textContent.trim();
      if (!text) { setStatus('Generate a story before translating it.'); return; }
      setStatus('Translating...');
      const resp = await fetch('/api/translate', {
        method: 'POST',
        headers: { 'Content-Type': 'application/json' },
        body: JSON.stringify({
          text,
          language: el('language').value,
          temperature: parseFloat(el('trTemperature').value)
        })
      });
      const data = await resp.json();
      if (!resp.ok) { setStatus(data.error || 'Translation failed.'); return; }
      el('translation').textContent = data.text;
      setStatus('Translation ready!');
    }

    el('generate').addEventListener('click', generate);
    el('translate').addEventListener('click', translate);
    loadOptions();
  </script>
</body>
</html>`
